package config

import (
	"time"

	"github.com/rileyhilliard/rangepick/internal/daterange"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .rangepick.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Locale is a BCP 47 tag. Unknown tags fall back to the closest
	// built-in table.
	Locale string `yaml:"locale" mapstructure:"locale"`

	// WeekStart is "sunday" or "monday".
	WeekStart string `yaml:"week_start" mapstructure:"week_start"`

	// Mode is "range" or "single".
	Mode string `yaml:"mode" mapstructure:"mode"`

	// MinDate and MaxDate bound the selectable days (ISO dates, inclusive).
	MinDate string `yaml:"min_date,omitempty" mapstructure:"min_date"`
	MaxDate string `yaml:"max_date,omitempty" mapstructure:"max_date"`

	// Placeholder overrides the locale's trigger label.
	Placeholder string `yaml:"placeholder,omitempty" mapstructure:"placeholder"`

	// QuitOnComplete ends the picker as soon as a range is completed.
	QuitOnComplete bool `yaml:"quit_on_complete" mapstructure:"quit_on_complete"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format" mapstructure:"format"`

	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// Accepted enum values.
var (
	WeekStarts    = []string{"sunday", "monday"}
	Modes         = []string{"range", "single"}
	OutputFormats = []string{"text", "json"}
	ColorModes    = []string{"auto", "always", "never"}
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:        CurrentConfigVersion,
		Locale:         "pt-BR",
		WeekStart:      "sunday",
		Mode:           "range",
		QuitOnComplete: true,
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}

// Bounds parses MinDate and MaxDate.
func (c *Config) Bounds() (daterange.Bounds, error) {
	var b daterange.Bounds
	var err error
	if b.Min, err = daterange.ParseDate(c.MinDate); err != nil {
		return daterange.Bounds{}, err
	}
	if b.Max, err = daterange.ParseDate(c.MaxDate); err != nil {
		return daterange.Bounds{}, err
	}
	return b, nil
}

// WeekStartDay returns the configured first day of the week.
func (c *Config) WeekStartDay() time.Weekday {
	if c.WeekStart == "monday" {
		return time.Monday
	}
	return time.Sunday
}

// SelectionMode returns the configured selection mode.
func (c *Config) SelectionMode() daterange.Mode {
	if c.Mode == "single" {
		return daterange.ModeSingle
	}
	return daterange.ModeRange
}
