package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderWidth is the default width of the header divider
const HeaderWidth = 40

// RenderHeader renders the name and version line shown above command output.
func RenderHeader(version, tagline string) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorNeonPink).
		Bold(true)

	versionStyle := lipgloss.NewStyle().
		Foreground(ColorNeonCyan)

	dividerStyle := lipgloss.NewStyle().
		Foreground(ColorGlassBorder)

	var output strings.Builder
	output.WriteString(titleStyle.Render("rangepick"))
	output.WriteString(" ")
	output.WriteString(versionStyle.Render(version))
	output.WriteString("\n")

	if tagline != "" {
		output.WriteString(lipgloss.NewStyle().Foreground(ColorSecondary).Render(tagline))
		output.WriteString("\n")
	}

	output.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	output.WriteString("\n")

	return output.String()
}
