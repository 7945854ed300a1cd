package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rileyhilliard/rangepick/internal/config"
	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow_Defaults(t *testing.T) {
	isolate(t)
	var buf bytes.Buffer

	require.NoError(t, configShowCommand(&buf))

	out := buf.String()
	assert.Contains(t, out, "Source: defaults (no .rangepick.yaml found)")
	assert.Contains(t, out, "locale")
	assert.Contains(t, out, "pt-BR")
	assert.Contains(t, out, "quit_on_complete")
}

func TestConfigShow_File(t *testing.T) {
	dir := isolate(t)
	path := writeTestConfig(t, dir, "locale: en-GB\nweek_start: monday\n")
	machineMode = true
	var buf bytes.Buffer

	require.NoError(t, configShowCommand(&buf))

	var env struct {
		Data ConfigOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, path, env.Data.Path)
	require.NotNil(t, env.Data.Config)
	assert.Equal(t, "en-GB", env.Data.Config.Locale)
	assert.Equal(t, "monday", env.Data.Config.WeekStart)
}

func TestConfigSet(t *testing.T) {
	dir := isolate(t)
	path := writeTestConfig(t, dir, "# picker settings\nlocale: pt-BR\n")
	var buf bytes.Buffer

	require.NoError(t, configSetCommand(&buf, "week_start", "monday"))
	assert.Contains(t, buf.String(), "Set week_start = monday in "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "monday", cfg.WeekStart)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# picker settings")
}

func TestConfigSet_Errors(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		isolate(t)
		err := configSetCommand(&bytes.Buffer{}, "locale", "en-US")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
		assert.Contains(t, err.Error(), "Config file not found")
	})

	t.Run("unknown key", func(t *testing.T) {
		dir := isolate(t)
		writeTestConfig(t, dir, "locale: pt-BR\n")
		err := configSetCommand(&bytes.Buffer{}, "colour", "never")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("invalid value", func(t *testing.T) {
		dir := isolate(t)
		writeTestConfig(t, dir, "locale: pt-BR\n")
		err := configSetCommand(&bytes.Buffer{}, "mode", "multi")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}
