package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/rileyhilliard/rangepick/internal/logger"
	"github.com/rileyhilliard/rangepick/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	noColor bool
	verbose bool
)

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "rangepick",
	Short: "Pick date ranges in the terminal",
	Long: `rangepick is a two-click date range picker for the terminal.

Click (or press enter on) a start day, then an end day. The picker shows
two months side by side, previews the range under the pointer, and has
shortcuts for today and the usual presets.

Scripts can use the same selection rules without the TUI:

  rangepick preset last7
  rangepick format --from 2024-01-12 --to 2024-01-15
  rangepick check --from 2024-01-12 --to 2024-01-15 --min 2024-01-10`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
		if noColor {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return pickCommand(cmd, pickOpts)
	},
}

// Execute runs the root command and exits with a non-zero code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := errors.GetExitCode(err); ok {
			os.Exit(code)
		}
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints err the way the output mode expects: a JSON envelope
// on stdout in machine mode, the structured message on stderr otherwise.
func reportError(err error) {
	if machineMode {
		_ = WriteJSONFromError(os.Stdout, err)
		return
	}
	msg := err.Error()
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	if isUnknownCommandError(err) {
		msg += "\n  Run 'rangepick --help' to see the available commands.\n"
	}
	fmt.Fprint(os.Stderr, ui.ErrorStyle().Render(msg))
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "rangepick"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .rangepick.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logging (also RANGEPICK_DEBUG=1)")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "json", false, "print results and errors as JSON")

	addPickFlags(rootCmd, &pickOpts)
}
