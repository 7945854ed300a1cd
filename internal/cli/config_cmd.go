package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/rangepick/internal/config"
	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/rileyhilliard/rangepick/internal/ui"
	"github.com/rileyhilliard/rangepick/internal/util"
)

// ConfigOutput is the data part of 'config show --json'.
type ConfigOutput struct {
	Path   string         `json:"path,omitempty"`
	Config *config.Config `json:"config"`
}

// configShowCommand prints the effective settings and where they came from.
func configShowCommand(w io.Writer) error {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if machineMode {
		return WriteJSONSuccess(w, ConfigOutput{Path: path, Config: cfg})
	}

	source := path
	if source == "" {
		source = "defaults (no " + config.ConfigFileName + " found)"
	}
	fmt.Fprintln(w, ui.MutedStyle().Render("Source: "+source))

	rows := [][]string{
		{"locale", cfg.Locale},
		{"week_start", cfg.WeekStart},
		{"mode", cfg.Mode},
		{"min_date", cfg.MinDate},
		{"max_date", cfg.MaxDate},
		{"placeholder", cfg.Placeholder},
		{"quit_on_complete", fmt.Sprint(cfg.QuitOnComplete)},
		{"output.format", cfg.Output.Format},
		{"output.color", cfg.Output.Color},
	}
	_, err = fmt.Fprintln(w, ui.RenderSimpleTable([]ui.TableColumn{
		{Title: "Key", Width: 18},
		{Title: "Value", Width: 24},
	}, rows))
	return err
}

// configSetCommand changes one key in the config file in place.
func configSetCommand(w io.Writer, key, value string) error {
	path, err := config.Find(cfgFile)
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"Config file not found",
			"Run 'rangepick init' to create one first.")
	}

	if err := config.SetValue(path, key, value); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Couldn't set %s", key),
			"Known keys: "+util.JoinOrNone(config.Keys))
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		ui.PrintWarning(os.Stderr, fmt.Sprintf("%s now holds an invalid value", path))
		return err
	}

	ui.PrintSuccess(w, fmt.Sprintf("Set %s = %s in %s", key, value, path))
	return nil
}
