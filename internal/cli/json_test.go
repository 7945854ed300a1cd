package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineMode_DefaultValue(t *testing.T) {
	oldMode := machineMode
	defer func() { machineMode = oldMode }()

	machineMode = false
	assert.False(t, MachineMode())

	machineMode = true
	assert.True(t, MachineMode())
}

func TestWriteJSONSuccess_BasicData(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSONSuccess(&buf, map[string]string{"key": "value"})
	require.NoError(t, err)

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	dataMap, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "value", dataMap["key"])
}

func TestWriteJSONSuccess_NilData(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSONSuccess(&buf, nil))

	assert.NotContains(t, buf.String(), `"data"`, "nil data is omitted")
	assert.Contains(t, buf.String(), `"success": true`)
}

func TestWriteJSONError(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSONError(&buf, ErrCodeRangeInvalid, "bad range", "fix it", map[string]int{"days": 3})
	require.NoError(t, err)

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeRangeInvalid, env.Error.Code)
	assert.Equal(t, "bad range", env.Error.Message)
	assert.Equal(t, "fix it", env.Error.Suggestion)
}

func TestErrorToJSON(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"config not found", errors.New(errors.ErrConfig, "Config file not found", ""), ErrCodeConfigNotFound},
		{"config invalid", errors.New(errors.ErrConfig, "'x' isn't a valid mode", ""), ErrCodeConfigInvalid},
		{"range", errors.New(errors.ErrRange, "end before start", ""), ErrCodeRangeInvalid},
		{"input", errors.New(errors.ErrInput, "--from isn't a date", ""), ErrCodeInputInvalid},
		{"terminal", errors.New(errors.ErrTerm, "needs a terminal", ""), ErrCodeNotTerminal},
		{"cancelled", errors.New(errors.ErrExec, "Selection cancelled", ""), ErrCodeCancelled},
		{"exec", errors.New(errors.ErrExec, "picker crashed", ""), ErrCodeCommandFailed},
		{"unknown code", errors.New("OTHER", "what", ""), ErrCodeUnknown},
		{"plain error", fmt.Errorf("boom"), ErrCodeUnknown},
		{"wrapped structured error", fmt.Errorf("outer: %w", errors.New(errors.ErrRange, "inner", "")), ErrCodeRangeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorToJSON(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}

	assert.Nil(t, ErrorToJSON(nil))
}

func TestErrorToJSON_CauseDetails(t *testing.T) {
	err := errors.WrapWithCode(fmt.Errorf("parsing time"), errors.ErrInput, "--from isn't a date", "Use YYYY-MM-DD")

	got := ErrorToJSON(err)

	assert.Equal(t, "--from isn't a date", got.Message)
	assert.Equal(t, "Use YYYY-MM-DD", got.Suggestion)
	assert.Equal(t, map[string]interface{}{"cause": "parsing time"}, got.Details)
}

func TestWriteJSONFromError(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSONFromError(&buf, errors.New(errors.ErrRange, "end before start", "swap them")))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, ErrCodeRangeInvalid, env.Error.Code)
	assert.Equal(t, "swap them", env.Error.Suggestion)
}
