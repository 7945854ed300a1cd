package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Neon palette shared by the CLI output and the calendar.
const (
	ColorNeonPink    lipgloss.Color = "#FF2E97"
	ColorNeonCyan    lipgloss.Color = "#00FFFF"
	ColorNeonPurple  lipgloss.Color = "#BF40FF"
	ColorNeonGreen   lipgloss.Color = "#39FF14"
	ColorNeonAmber   lipgloss.Color = "#FFAA00"
	ColorDeepVoid    lipgloss.Color = "#0A0A0F"
	ColorDarkSurface lipgloss.Color = "#12121A"
	ColorGlassBorder lipgloss.Color = "#2A2A4A"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "#39FF14"
	ColorError   lipgloss.Color = "#FF0055"
	ColorWarning lipgloss.Color = "#FFAA00"
	ColorInfo    lipgloss.Color = "#00FFFF"
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "#FFFFFF"
	ColorSecondary lipgloss.Color = "#B4B4D0"
	ColorMuted     lipgloss.Color = "#6B6B8D"
)

// Color modes accepted by output.color.
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

func SuccessStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorSuccess) }
func ErrorStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(ColorError) }
func WarningStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorWarning) }
func InfoStyle() lipgloss.Style    { return lipgloss.NewStyle().Foreground(ColorInfo) }
func MutedStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(ColorMuted) }

// DisableColors switches lipgloss to plain ASCII output (for --no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// SetColorMode applies an output.color setting. "auto" keeps whatever the
// terminal reports; NO_COLOR in the environment always wins.
func SetColorMode(mode string) {
	if os.Getenv("NO_COLOR") != "" {
		DisableColors()
		return
	}
	switch mode {
	case ColorModeNever:
		DisableColors()
	case ColorModeAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
	}
}

// PrintSuccess writes a green check line to w.
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, SuccessStyle().Render(SymbolSuccess)+" "+message)
}

// PrintWarning writes a warning line to w, usually stderr.
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintln(w, WarningStyle().Render(SymbolWarning)+" "+message)
}
