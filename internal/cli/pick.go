package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/rileyhilliard/rangepick/internal/logger"
	"github.com/rileyhilliard/rangepick/internal/picker"
	"github.com/rileyhilliard/rangepick/internal/ui"
	"github.com/spf13/cobra"
)

// debugLogFile receives log output while the TUI owns the terminal.
const debugLogFile = "rangepick-debug.log"

// pickOptions holds the flags of the pick command (and the bare root command).
type pickOptions struct {
	Range   RangeFlags
	Bounds  BoundsFlags
	Display DisplayFlags
}

var pickOpts pickOptions

func addPickFlags(cmd *cobra.Command, opts *pickOptions) {
	AddRangeFlags(cmd, &opts.Range)
	AddBoundsFlags(cmd, &opts.Bounds)
	AddDisplayFlags(cmd, &opts.Display)
}

// pickCommand runs the interactive picker and prints the chosen range.
func pickCommand(cmd *cobra.Command, opts pickOptions) error {
	s, err := loadSettings(opts.Display, opts.Bounds)
	if err != nil {
		return err
	}

	initial, err := ParseRange(opts.Range)
	if err != nil {
		return err
	}

	// Keep stdout free for the result when it is piped, e.g. $(rangepick).
	screen := os.Stdout
	if !ui.IsTerminal(screen) {
		screen = os.Stderr
	}
	if !ui.IsTerminal(os.Stdin) || !ui.IsTerminal(screen) {
		return errors.New(errors.ErrTerm,
			"The picker needs an interactive terminal",
			"Use 'rangepick check --from ... --to ...' or 'rangepick preset' in scripts.")
	}

	log := logger.Default()
	if logger.DebugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "rangepick")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrExec,
				"Couldn't open the debug log "+debugLogFile,
				"Check write permissions in the current directory, or unset RANGEPICK_DEBUG.")
		}
		defer f.Close()
	}
	log.Debug("pick: locale=%s mode=%s bounds=[%s, %s] initial=%s", s.Locale.Tag, s.Mode, s.Bounds.Min, s.Bounds.Max, initial)

	res, err := picker.Run(picker.Options{
		Initial:        initial,
		Bounds:         s.Bounds,
		Mode:           s.Mode,
		Placeholder:    s.Placeholder,
		Locale:         s.Locale,
		WeekStart:      s.WeekStart,
		QuitOnComplete: s.Config.QuitOnComplete,
		Clock:          s.Clock,
		Logger:         log,
	}, screen, os.Stdin)
	if err != nil {
		return err
	}

	if res.Cancelled {
		return errors.New(errors.ErrExec,
			"Selection cancelled",
			"Run again and pick a start and an end day.")
	}

	return writeRange(cmd.OutOrStdout(), s, res.Range)
}
