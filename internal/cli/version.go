package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/rileyhilliard/rangepick/internal/ui"
	"github.com/spf13/cobra"
)

// Version information set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// versionShort controls whether to show short or full version output
var versionShort bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of rangepick.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return versionCommand(cmd.OutOrStdout(), versionShort)
	},
}

// VersionOutput is the data part of 'version --json'.
type VersionOutput struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
	Go      string `json:"go"`
	OSArch  string `json:"os_arch"`
}

func versionCommand(w io.Writer, short bool) error {
	if short {
		_, err := fmt.Fprintln(w, version)
		return err
	}

	osArch := runtime.GOOS + "/" + runtime.GOARCH
	if machineMode {
		return WriteJSONSuccess(w, VersionOutput{
			Version: version,
			Commit:  commit,
			Built:   date,
			Go:      runtime.Version(),
			OSArch:  osArch,
		})
	}

	fmt.Fprint(w, ui.RenderHeader(formatVersion(version), "two-click date ranges for the terminal"))
	fmt.Fprintf(w, "commit: %s\n", commit)
	fmt.Fprintf(w, "built: %s\n", date)
	fmt.Fprintf(w, "go: %s\n", runtime.Version())
	fmt.Fprintf(w, "os/arch: %s\n", osArch)
	return nil
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

// formatVersion ensures version has a 'v' prefix for display
func formatVersion(v string) string {
	if v == "" || v == "dev" {
		return v
	}
	if v[0] != 'v' {
		return "v" + v
	}
	return v
}

// SetVersionInfo sets the version information (called from main).
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// GetVersion returns the current version string.
func GetVersion() string {
	return version
}
