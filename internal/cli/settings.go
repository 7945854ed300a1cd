package cli

import (
	"time"

	"github.com/rileyhilliard/rangepick/internal/config"
	"github.com/rileyhilliard/rangepick/internal/daterange"
	"github.com/rileyhilliard/rangepick/internal/locale"
	"github.com/rileyhilliard/rangepick/internal/ui"
)

// settings is the merged view of defaults, config file, environment and flags.
type settings struct {
	Config      *config.Config
	Locale      locale.Locale
	WeekStart   time.Weekday
	Mode        daterange.Mode
	Bounds      daterange.Bounds
	Placeholder string
	Clock       daterange.Clock
}

// loadSettings resolves the config and applies flag overrides on top.
// It also applies the config's output settings to the process.
func loadSettings(display DisplayFlags, bounds BoundsFlags) (*settings, error) {
	cfg, cfgBounds, err := config.Resolve(cfgFile)
	if err != nil {
		return nil, err
	}
	applyOutputConfig(cfg)

	s := &settings{
		Config:      cfg,
		Locale:      locale.Lookup(cfg.Locale),
		WeekStart:   cfg.WeekStartDay(),
		Mode:        cfg.SelectionMode(),
		Placeholder: cfg.Placeholder,
		Clock:       time.Now,
	}

	if display.Locale != "" {
		s.Locale = locale.Lookup(display.Locale)
	}
	if display.WeekStart != "" {
		if s.WeekStart, err = ParseWeekStart(display.WeekStart); err != nil {
			return nil, err
		}
	}
	if display.Mode != "" {
		if s.Mode, err = ParseMode(display.Mode); err != nil {
			return nil, err
		}
	}
	if display.Placeholder != "" {
		s.Placeholder = display.Placeholder
	}
	if display.Today != "" {
		today, err := ParseDateFlag("today", display.Today)
		if err != nil {
			return nil, err
		}
		s.Clock = func() time.Time { return today.Time() }
	}

	if s.Bounds, err = ParseBounds(bounds, cfgBounds); err != nil {
		return nil, err
	}

	return s, nil
}

// Today returns the current day under the settings' clock.
func (s *settings) Today() daterange.Date {
	return daterange.Today(s.Clock)
}

// applyOutputConfig turns on machine mode and picks the color profile
// from the output section. Explicit flags win.
func applyOutputConfig(cfg *config.Config) {
	if cfg.Output.Format == "json" {
		machineMode = true
	}
	if noColor {
		ui.DisableColors()
		return
	}
	if cfg.Output.Color != ui.ColorModeAuto {
		ui.SetColorMode(cfg.Output.Color)
	}
}
