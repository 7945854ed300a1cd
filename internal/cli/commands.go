package cli

import (
	"os"

	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	presetOpts  presetOptions
	formatOpts  formatOptions
	checkOpts   checkOptions
	initOpts    InitOptions
	pickSubOpts pickOptions
)

// pickCmd runs the interactive picker
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a date range interactively",
	Long: `Open the two-month calendar and pick a range.

Pick a start day, then an end day. Picking a day before the start
restarts the selection there. The result prints to stdout as two ISO
dates (or JSON with --json), so it works inside $(...).

Keys:
  arrows/hjkl  Move the cursor
  enter/space  Pick the day under the cursor
  c            Clear
  t            Today
  1 / 2 / 3    Last 7 days / last 30 days / this month
  [ / ]        Previous / next month
  esc          Close the calendar (esc again or q quits)
  y            Accept the range once the calendar is closed
  ?            Show all keys

The mouse works too: hover previews the range, click picks a day, and
the wheel changes months.

Examples:
  rangepick pick
  rangepick pick --from 2024-01-12 --to 2024-01-15
  rangepick pick --min 2024-01-01 --max 2024-03-31 --locale en-US`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return pickCommand(cmd, pickSubOpts)
	},
}

// presetCmd prints a preset range
var presetCmd = &cobra.Command{
	Use:   "preset [last7|last30|month]",
	Short: "Print the range of a preset",
	Long: `Print the range a preset selects, ending today.

  last7   the last 7 days (today and the 7 days before it)
  last30  the last 30 days (today and the 30 days before it)
  month   the first of this month up to today

Without a name, asks which preset to use.

Examples:
  rangepick preset last7
  rangepick preset month --today 2024-01-16
  rangepick preset --list`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"last7", "last30", "month"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return presetCommand(cmd.OutOrStdout(), args, presetOpts)
	},
}

// formatCmd prints the trigger label for a range
var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Print the label the picker shows for a range",
	Long: `Format a range the way the picker's trigger shows it.

Until both ends are set the label is the placeholder.

Examples:
  rangepick format --from 2024-01-12 --to 2024-01-15
  rangepick format --from 2024-01-12 --to 2024-01-15 --locale en-US
  rangepick format --from 2024-01-12`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return formatCommand(cmd.OutOrStdout(), formatOpts)
	},
}

// checkCmd validates a range
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a range against selectable-day bounds",
	Long: `Check that a range is consistent and inside the bounds.

Exits non-zero when the end comes before the start, when only an end is
given, or when either end is outside --min/--max (or min_date/max_date
from the config).

Examples:
  rangepick check --from 2024-01-12 --to 2024-01-15
  rangepick check --from 2024-01-12 --to 2024-01-15 --min 2024-01-10 --max 2024-01-20`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkCommand(cmd.OutOrStdout(), checkOpts)
	},
}

// initCmd creates a new .rangepick.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .rangepick.yaml configuration",
	Long: `Create a .rangepick.yaml file in the current directory.

Asks for the locale, week start and selection mode with interactive
prompts, unless --non-interactive is set or stdin is not a terminal.

Examples:
  rangepick init
  rangepick init --non-interactive --locale en-US --week-start monday
  rangepick init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(cmd.OutOrStdout(), initOpts)
	},
}

// configCmd groups the config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowCommand(cmd.OutOrStdout())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting in the config file",
	Long: `Change one setting in the config file, keeping its comments.

Examples:
  rangepick config set locale en-US
  rangepick config set output.color never`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configSetCommand(cmd.OutOrStdout(), args[0], args[1])
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for rangepick.

Examples:
  # Bash
  rangepick completion bash > /etc/bash_completion.d/rangepick

  # Zsh
  rangepick completion zsh > "${fpath[1]}/_rangepick"

  # Fish
  rangepick completion fish > ~/.config/fish/completions/rangepick.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	addPickFlags(pickCmd, &pickSubOpts)

	// preset command flags
	presetCmd.Flags().BoolVar(&presetOpts.List, "list", false, "list every preset with its range")
	AddDisplayFlags(presetCmd, &presetOpts.Display)

	// format command flags
	AddRangeFlags(formatCmd, &formatOpts.Range)
	AddDisplayFlags(formatCmd, &formatOpts.Display)

	// check command flags
	AddRangeFlags(checkCmd, &checkOpts.Range)
	AddBoundsFlags(checkCmd, &checkOpts.Bounds)

	// init command flags
	initCmd.Flags().StringVar(&initOpts.Locale, "locale", "", "locale tag to write")
	initCmd.Flags().StringVar(&initOpts.WeekStart, "week-start", "", "week start to write (sunday|monday)")
	initCmd.Flags().StringVar(&initOpts.Mode, "mode", "", "selection mode to write (range|single)")
	initCmd.Flags().BoolVarP(&initOpts.Overwrite, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initOpts.NonInteractive, "non-interactive", false, "skip prompts and use flags and defaults")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	// Register all commands
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}
