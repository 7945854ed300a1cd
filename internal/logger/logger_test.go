package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		verbose   bool
		expectLog bool
	}{
		{name: "logs when RANGEPICK_DEBUG is set", envValue: "1", expectLog: true},
		{name: "logs when verbose is on", verbose: true, expectLog: true},
		{name: "silent otherwise", expectLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			t.Setenv(DebugEnv, tt.envValue)
			SetVerbose(tt.verbose)
			defer SetVerbose(false)

			l := NewEnvLogger("[test]")
			l.Debug("test message %s", "arg")

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] test message arg")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	buf := captureLog(t)

	l := NewEnvLogger("[lvl]")
	l.Info("info %d", 42)
	l.Warn("careful")
	l.Error("broken")

	out := buf.String()
	assert.Contains(t, out, "[lvl] info 42")
	assert.Contains(t, out, "[lvl] WARN: careful")
	assert.Contains(t, out, "[lvl] ERROR: broken")
}

func TestNoop(t *testing.T) {
	buf := captureLog(t)

	l := Noop()
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")

	assert.Empty(t, buf.String())
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()
	l.Debug("click %s", "2024-01-12")
	l.Warn("range rejected")

	require.Len(t, l.Messages, 2)
	assert.Equal(t, "click 2024-01-12", l.Messages[0].Message)
	assert.True(t, l.HasLevel("debug"))
	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("error"))

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestSetDefault(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Info("hello")

	assert.True(t, buf.HasLevel("info"))
}
