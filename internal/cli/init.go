package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/rangepick/internal/config"
	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/rileyhilliard/rangepick/internal/locale"
	"github.com/rileyhilliard/rangepick/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to write the config into (default: current)
	Locale         string // Pre-specified locale tag
	WeekStart      string // Pre-specified week start
	Mode           string // Pre-specified selection mode
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use flags and defaults
}

// Init creates a new .rangepick.yaml configuration file.
func Init(w io.Writer, opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	if !opts.NonInteractive && !ui.IsTerminal(os.Stdin) {
		opts.NonInteractive = true
	}

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if opts.Locale != "" {
		cfg.Locale = locale.Lookup(opts.Locale).Tag.String()
	}
	if opts.WeekStart != "" {
		cfg.WeekStart = opts.WeekStart
	}
	if opts.Mode != "" {
		cfg.Mode = opts.Mode
	}

	if !opts.NonInteractive {
		if err := askInitQuestions(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := config.Write(configPath, cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	ui.PrintSuccess(w, "Created "+configPath)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  rangepick              - Pick a range")
	fmt.Fprintln(w, "  rangepick preset last7 - Print the last 7 days")
	fmt.Fprintln(w, "  rangepick config show  - Check the effective settings")

	return nil
}

// askInitQuestions fills cfg from huh prompts, starting from its values.
func askInitQuestions(cfg *config.Config) error {
	localeOptions := make([]huh.Option[string], 0, len(locale.Supported()))
	for _, tag := range locale.Supported() {
		l := locale.Lookup(tag)
		localeOptions = append(localeOptions, huh.NewOption(fmt.Sprintf("%s (%s)", tag, l.Labels.Placeholder), tag))
	}

	placeholder := cfg.Placeholder
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Locale").
				Description("Month names, weekday headers and date format").
				Options(localeOptions...).
				Value(&cfg.Locale),
			huh.NewSelect[string]().
				Title("Week starts on").
				Options(
					huh.NewOption("Sunday", "sunday"),
					huh.NewOption("Monday", "monday"),
				).
				Value(&cfg.WeekStart),
			huh.NewSelect[string]().
				Title("Selection mode").
				Options(
					huh.NewOption("Date range (two clicks)", "range"),
					huh.NewOption("Single date", "single"),
				).
				Value(&cfg.Mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Placeholder (optional)").
				Description("Shown on the trigger until a range is picked").
				Placeholder("leave empty for the locale's default").
				Value(&placeholder),
			huh.NewConfirm().
				Title("Quit as soon as a range is picked?").
				Value(&cfg.QuitOnComplete),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}
	cfg.Placeholder = placeholder
	return nil
}
