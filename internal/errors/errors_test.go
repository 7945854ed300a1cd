package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrRange,
		ErrInput,
		ErrTerm,
		ErrExec,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .rangepick.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "range error",
			code:       ErrRange,
			message:    "Range has an end date but no start date",
			suggestion: "Pass --from as well as --to",
		},
		{
			name:       "input error",
			code:       ErrInput,
			message:    "'2024-13-01' isn't a date",
			suggestion: "Use YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "basic error formatting",
			err:           New(ErrConfig, "Invalid configuration", "Check .rangepick.yaml syntax"),
			expectedParts: []string{"✗", "Invalid configuration", "Check .rangepick.yaml syntax"},
		},
		{
			name:          "error without suggestion",
			err:           New(ErrExec, "Command failed", ""),
			expectedParts: []string{"Command failed"},
			notExpected:   []string{"\n\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("terminal went away")
	wrapped := Wrap(cause, "Picker failed")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrExec, wrapped.Code, "Wrap should default to ErrExec code")
	assert.Equal(t, cause, wrapped.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to load config", "Create .rangepick.yaml")

	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Create .rangepick.yaml", wrapped.Suggestion)
	assert.Contains(t, wrapped.Error(), "file not found")
	assert.True(t, errors.Is(wrapped, cause))
}

func TestIsCode(t *testing.T) {
	err := New(ErrRange, "Range error", "")

	assert.True(t, IsCode(err, ErrRange))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(errors.New("standard error"), ErrRange))
	assert.False(t, IsCode(nil, ErrRange))
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("parsing time \"x\""),
		ErrInput,
		"Cannot read --from",
		"Use YYYY-MM-DD",
	)

	lines := strings.Split(err.Error(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "✗"), "first line should start with failure symbol")
	assert.Contains(t, lines[0], "Cannot read --from")
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOk   bool
	}{
		{"ExitError returns code", NewExitError(42), 42, true},
		{"ExitError with zero", NewExitError(0), 0, true},
		{"standard error returns false", errors.New("standard error"), 0, false},
		{"nil error returns false", nil, 0, false},
		{"structured Error returns false", New(ErrExec, "test", ""), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := GetExitCode(tt.err)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestExitError_Message(t *testing.T) {
	assert.Equal(t, "exit code 2", NewExitError(2).Error())
}
