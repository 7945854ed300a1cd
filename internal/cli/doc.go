// Package cli implements the rangepick command-line interface.
//
// # Command Structure
//
// The root command is "rangepick". Without a subcommand it runs the
// interactive picker, the same as "rangepick pick":
//
//	rangepick pick            - Pick a range in the TUI and print it
//	rangepick preset [name]   - Print a preset range (last7, last30, month)
//	rangepick format          - Print the trigger label for a range
//	rangepick check           - Validate a range against bounds
//	rangepick init            - Create .rangepick.yaml
//	rangepick config show|set - Inspect or edit the config file
//
// # Settings
//
// Every command that needs settings resolves them the same way: defaults,
// then the config file, then RANGEPICK_ environment variables, then flags.
// The merged result is a settings value that the commands read from.
//
// # Output
//
// Results go to stdout as plain text, or as a JSON envelope with --json
// (or output.format: json). Errors go to stderr in the structured
// "message / cause / suggestion" form, or as a JSON error envelope.
package cli
