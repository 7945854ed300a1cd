package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestColorConstants(t *testing.T) {
	colors := []lipgloss.Color{
		ColorNeonPink,
		ColorNeonCyan,
		ColorNeonPurple,
		ColorNeonGreen,
		ColorNeonAmber,
		ColorDeepVoid,
		ColorDarkSurface,
		ColorGlassBorder,
		ColorSuccess,
		ColorError,
		ColorWarning,
		ColorInfo,
		ColorPrimary,
		ColorSecondary,
		ColorMuted,
	}

	for _, color := range colors {
		colorStr := string(color)
		assert.NotEmpty(t, colorStr, "color should not be empty")
		assert.True(t, colorStr[0] == '#', "color should start with #: %s", colorStr)
		assert.Len(t, colorStr, 7, "color should be 7 chars (#RRGGBB): %s", colorStr)
	}
}

func TestStyles(t *testing.T) {
	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"success", SuccessStyle()},
		{"error", ErrorStyle()},
		{"warning", WarningStyle()},
		{"info", InfoStyle()},
		{"muted", MutedStyle()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.style.Render(tt.name), tt.name)
		})
	}
}

func TestSetColorMode(t *testing.T) {
	original := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(original)

	t.Setenv("NO_COLOR", "")

	SetColorMode(ColorModeAlways)
	assert.Equal(t, termenv.TrueColor, lipgloss.ColorProfile())

	SetColorMode(ColorModeNever)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())

	SetColorMode(ColorModeAlways)
	t.Setenv("NO_COLOR", "1")
	SetColorMode(ColorModeAlways)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile(), "NO_COLOR wins over always")
}

func TestDisableColors(t *testing.T) {
	original := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(original)

	DisableColors()
	assert.Equal(t, "plain", SuccessStyle().Render("plain"))
}
