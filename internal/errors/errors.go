package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Codes group failures by where they come from. The CLI maps them to the
// JSON error codes.
const (
	ErrConfig = "CONFIG" // .rangepick.yaml or RANGEPICK_* values
	ErrRange  = "RANGE"  // a range or bounds that break the from <= to shape
	ErrInput  = "INPUT"  // a flag or argument that doesn't parse
	ErrTerm   = "TERM"   // the picker can't get a terminal
	ErrExec   = "EXEC"   // the picker ran but gave no range
)

// Error is a failure the user can act on. Message says what went wrong,
// Cause carries the underlying error if there is one, and Suggestion
// says what to try next. Error() prints them as a block:
//
//	✗ --from 'soon' isn't a date
//
//	  parsing time "soon" as "2006-01-02": cannot parse "soon" as "2006"
//
//	  Use the YYYY-MM-DD format, like 2024-01-31.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New returns an Error with no cause.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// Wrap attaches a message to err under ErrExec.
func Wrap(err error, message string) *Error {
	return &Error{Code: ErrExec, Message: message, Cause: err}
}

// WrapWithCode attaches a code, message and suggestion to err.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✗ %s\n", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, "\n  %s\n", e.Cause)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  %s\n", e.Suggestion)
	}
	return b.String()
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode reports whether an Error with the given code is in err's chain.
func IsCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// ExitError carries a process exit code without any message of its own.
// The command has already reported the problem; main only needs the code.
type ExitError struct {
	Code int
}

// NewExitError returns an ExitError for code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// GetExitCode finds an ExitError in err's chain and returns its code.
func GetExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
