package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/rangepick/internal/daterange"
	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, "sunday", cfg.WeekStart)
	assert.Equal(t, "range", cfg.Mode)
	assert.True(t, cfg.QuitOnComplete)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
version: 1
locale: en-US
week_start: Monday
mode: single
min_date: 2024-01-10
max_date: 2024-02-20
placeholder: Pick dates
quit_on_complete: false
output:
  format: json
  color: never
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "monday", cfg.WeekStart, "enums are normalized to lower case")
	assert.Equal(t, time.Monday, cfg.WeekStartDay())
	assert.Equal(t, daterange.ModeSingle, cfg.SelectionMode())
	assert.Equal(t, "Pick dates", cfg.Placeholder)
	assert.False(t, cfg.QuitOnComplete)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "never", cfg.Output.Color)

	b, err := cfg.Bounds()
	require.NoError(t, err)
	assert.Equal(t, daterange.MustParseDate("2024-01-10"), b.Min)
	assert.Equal(t, daterange.MustParseDate("2024-02-20"), b.Max)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "locale: es-ES\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "es-ES", cfg.Locale)
	assert.Equal(t, "range", cfg.Mode)
	assert.True(t, cfg.QuitOnComplete)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "locale: es-ES\n")
	t.Setenv("RANGEPICK_LOCALE", "en-GB")
	t.Setenv("RANGEPICK_OUTPUT_FORMAT", "json")
	t.Setenv("RANGEPICK_QUIT_ON_COMPLETE", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en-GB", cfg.Locale)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.QuitOnComplete)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/.rangepick.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "locale: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read config file")
}

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) (explicit, want string)
		wantErr bool
	}{
		{
			name: "explicit path exists",
			setup: func(t *testing.T) (string, string) {
				path := filepath.Join(t.TempDir(), "custom.yaml")
				require.NoError(t, os.WriteFile(path, []byte("version: 1"), 0644))
				return path, path
			},
		},
		{
			name: "explicit path not found",
			setup: func(t *testing.T) (string, string) {
				return "/nonexistent/config.yaml", ""
			},
			wantErr: true,
		},
		{
			name: "current directory has config",
			setup: func(t *testing.T) (string, string) {
				dir := t.TempDir()
				path := writeConfig(t, dir, "version: 1")
				t.Chdir(dir)
				return "", path
			},
		},
		{
			name: "parent directory has config",
			setup: func(t *testing.T) (string, string) {
				dir := t.TempDir()
				path := writeConfig(t, dir, "version: 1")
				child := filepath.Join(dir, "a", "b")
				require.NoError(t, os.MkdirAll(child, 0755))
				t.Chdir(child)
				return "", path
			},
		},
		{
			name: "search stops at git root",
			setup: func(t *testing.T) (string, string) {
				dir := t.TempDir()
				writeConfig(t, dir, "version: 1")
				repo := filepath.Join(dir, "repo")
				require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))
				t.Chdir(repo)
				return "", ""
			},
		},
		{
			name: "global config",
			setup: func(t *testing.T) (string, string) {
				home := os.Getenv("HOME")
				global := filepath.Join(home, GlobalConfigDir)
				require.NoError(t, os.MkdirAll(global, 0755))
				path := filepath.Join(global, GlobalConfigFile)
				require.NoError(t, os.WriteFile(path, []byte("version: 1"), 0644))
				t.Chdir(t.TempDir())
				return "", path
			},
		},
		{
			name: "nothing found",
			setup: func(t *testing.T) (string, string) {
				t.Chdir(t.TempDir())
				return "", ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			explicit, want := tt.setup(t)

			got, err := Find(explicit)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if want != "" {
				// Temp dirs may sit behind symlinks (macOS /var).
				want, _ = filepath.EvalSymlinks(want)
				got, _ = filepath.EvalSymlinks(got)
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("RANGEPICK_MODE", "single")

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)

	assert.Empty(t, path)
	assert.Equal(t, "single", cfg.Mode, "env applies without a file")
	assert.Equal(t, "pt-BR", cfg.Locale)
}

func TestResolve(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "min_date: 2024-01-01\n")

	cfg, b, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "range", cfg.Mode)
	assert.Equal(t, daterange.MustParseDate("2024-01-01"), b.Min)
	assert.True(t, b.Max.IsZero())

	bad := writeConfig(t, t.TempDir(), "mode: multi\n")
	_, _, err = Resolve(bad)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_DateForms(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMin string
	}{
		{"unquoted", "min_date: 2024-01-10\nmax_date: 2024-01-20\n", "2024-01-10"},
		{"quoted", "min_date: \"2024-01-10\"\nmax_date: '2024-01-20'\n", "2024-01-10"},
		{"timestamp", "min_date: 2024-01-10T09:30:00Z\nmax_date: 2024-01-20\n", "2024-01-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMin, cfg.MinDate)
			assert.Equal(t, "2024-01-20", cfg.MaxDate)
			require.NoError(t, Validate(cfg))

			b, err := cfg.Bounds()
			require.NoError(t, err)
			assert.Equal(t, daterange.MustParseDate(tt.wantMin), b.Min)
		})
	}
}
