// Package logger is the logging seam for rangepick components.
//
// Components take a Logger instead of writing to the log package directly,
// so tests can capture messages and the TUI can route them to a file while
// Bubble Tea owns the terminal.
package logger

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

// DebugEnv is the environment variable that turns on debug output.
const DebugEnv = "RANGEPICK_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

var verbose atomic.Bool

// SetVerbose turns debug output on for every env logger, same as setting
// RANGEPICK_DEBUG. Wired to the --verbose flag.
func SetVerbose(on bool) {
	verbose.Store(on)
}

// DebugEnabled reports whether debug messages are printed.
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv(DebugEnv) != ""
}

// envLogger writes through the standard log package, so whatever output
// log is pointed at (stderr, or the TUI debug file) receives the lines.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a logger whose debug lines depend on DebugEnabled.
// The prefix is prepended to every message (e.g., "[calendar]").
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if DebugEnabled() {
		log.Printf(l.prefix+" "+format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	log.Printf(l.prefix+" WARN: "+format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	log.Printf(l.prefix+" ERROR: "+format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for test assertions.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) record(level, format string, args []interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record("debug", format, args) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.record("info", format, args) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record("warn", format, args) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.record("error", format, args) }

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("[rangepick]")

// Default returns the package-level logger.
func Default() Logger {
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(l Logger) {
	defaultLogger = l
}
