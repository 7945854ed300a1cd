package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/rangepick/internal/config"
	"github.com/rileyhilliard/rangepick/internal/ui"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with an empty home, so no
// real config is picked up, and resets the global flags afterwards.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	oldCfg, oldMachine, oldNoColor := cfgFile, machineMode, noColor
	t.Cleanup(func() {
		cfgFile, machineMode, noColor = oldCfg, oldMachine, oldNoColor
	})
	cfgFile = ""
	machineMode = false
	noColor = true
	ui.DisableColors()
	return dir
}

// writeTestConfig writes a config into dir and points --config at it.
func writeTestConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	cfgFile = path
	return path
}
