package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rileyhilliard/rangepick/internal/daterange"
	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".rangepick.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/rangepick"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. RANGEPICK_LOCALE.
	EnvPrefix = "RANGEPICK"
)

// Load reads config from the specified path. Environment variables with
// the RANGEPICK_ prefix override file values.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'rangepick init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .rangepick.yaml in current directory
// 3. .rangepick.yaml in parent directories (stops at git root or home)
// 4. ~/.config/rangepick/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	home, _ := os.UserHomeDir()
	dir := cwd
	for !isGitRoot(dir) {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if home != "" && parent == home {
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from explicit or the search order, or returns
// defaults (with environment overrides) when no file exists.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := parseConfig(newViper(), "environment")
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// newViper returns a viper instance with defaults and env binding set up.
// Every key needs a default so AutomaticEnv can see it during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("locale", def.Locale)
	v.SetDefault("week_start", def.WeekStart)
	v.SetDefault("mode", def.Mode)
	v.SetDefault("min_date", def.MinDate)
	v.SetDefault("max_date", def.MaxDate)
	v.SetDefault("placeholder", def.Placeholder)
	v.SetDefault("quit_on_complete", def.QuitOnComplete)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.color", def.Output.Color)
	return v
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, source string) (*Config, error) {
	cfg := DefaultConfig()

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		timeToDateHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+source)
	}

	cfg.WeekStart = strings.ToLower(strings.TrimSpace(cfg.WeekStart))
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))

	return cfg, nil
}

// timeToDateHook turns YAML timestamps back into ISO dates. An unquoted
// "min_date: 2024-01-10" reaches mapstructure as a time.Time.
func timeToDateHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if to.Kind() != reflect.String {
			return data, nil
		}
		if t, ok := data.(time.Time); ok {
			return t.Format(daterange.DateLayout), nil
		}
		return data, nil
	}
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
