package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rileyhilliard/rangepick/internal/daterange"
	"github.com/rileyhilliard/rangepick/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but rangepick only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest rangepick release.")
	}

	if err := validateEnum("week_start", cfg.WeekStart, WeekStarts); err != nil {
		return err
	}
	if err := validateEnum("mode", cfg.Mode, Modes); err != nil {
		return err
	}
	if err := validateEnum("output.format", cfg.Output.Format, OutputFormats); err != nil {
		return err
	}
	if err := validateEnum("output.color", cfg.Output.Color, ColorModes); err != nil {
		return err
	}

	return validateBounds(cfg)
}

func validateEnum(key, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' isn't a valid %s", value, key),
		fmt.Sprintf("Use one of: %s.", strings.Join(allowed, ", ")))
}

func validateBounds(cfg *Config) error {
	b, err := cfg.Bounds()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"min_date and max_date must be dates like 2024-01-31",
			"Fix the dates in your .rangepick.yaml.")
	}
	if err := b.Validate(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("min_date (%s) is after max_date (%s)", b.Min, b.Max),
			"Swap them, or remove one to leave that side open.")
	}
	return nil
}

// Resolve loads and validates a config in one step and returns the bounds
// ready to use.
func Resolve(explicit string) (*Config, daterange.Bounds, error) {
	cfg, _, err := LoadOrDefault(explicit)
	if err != nil {
		return nil, daterange.Bounds{}, err
	}
	if err := Validate(cfg); err != nil {
		return nil, daterange.Bounds{}, err
	}
	b, _ := cfg.Bounds()
	return cfg, b, nil
}
