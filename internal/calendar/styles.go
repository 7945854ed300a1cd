package calendar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rangepick/internal/daterange"
	"github.com/rileyhilliard/rangepick/internal/ui"
)

// Layout of the open popover. Mouse hit-testing depends on these.
const (
	cellWidth  = 4
	monthWidth = 7 * cellWidth
	monthGap   = 4
	gridTop    = 3 // trigger, month titles, weekday header
)

// Styles holds the lipgloss styles used by the view.
type Styles struct {
	Trigger     lipgloss.Style
	Placeholder lipgloss.Style
	Title       lipgloss.Style
	Nav         lipgloss.Style
	Weekday     lipgloss.Style
	Status      lipgloss.Style
	ActionKey   lipgloss.Style
	Action      lipgloss.Style
	Days        map[daterange.DayKind]lipgloss.Style
}

// DefaultStyles returns the neon palette styles.
func DefaultStyles() Styles {
	selected := lipgloss.NewStyle().
		Background(ui.ColorNeonPink).
		Foreground(ui.ColorDeepVoid).
		Bold(true)

	return Styles{
		Trigger: lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true),
		Placeholder: lipgloss.NewStyle().
			Foreground(ui.ColorMuted),
		Title: lipgloss.NewStyle().
			Foreground(ui.ColorNeonCyan).
			Bold(true),
		Nav: lipgloss.NewStyle().
			Foreground(ui.ColorNeonPink),
		Weekday: lipgloss.NewStyle().
			Foreground(ui.ColorSecondary),
		Status: lipgloss.NewStyle().
			Foreground(ui.ColorSecondary).
			Italic(true),
		ActionKey: lipgloss.NewStyle().
			Foreground(ui.ColorNeonPink).
			Bold(true),
		Action: lipgloss.NewStyle().
			Foreground(ui.ColorPrimary),
		Days: map[daterange.DayKind]lipgloss.Style{
			daterange.DayBase:     lipgloss.NewStyle().Foreground(ui.ColorPrimary),
			daterange.DayDisabled: lipgloss.NewStyle().Foreground(ui.ColorGlassBorder).Faint(true),
			daterange.DayToday: lipgloss.NewStyle().
				Foreground(ui.ColorNeonCyan).
				Underline(true),
			daterange.DayHoverPreview: lipgloss.NewStyle().
				Background(ui.ColorDarkSurface).
				Foreground(ui.ColorNeonPurple),
			daterange.DayInRange: lipgloss.NewStyle().
				Background(ui.ColorNeonPurple).
				Foreground(ui.ColorPrimary),
			daterange.DayRangeStart: selected,
			daterange.DayRangeEnd:   selected,
			daterange.DaySingle:     selected,
		},
	}
}

func (st Styles) day(kind daterange.DayKind) lipgloss.Style {
	if s, ok := st.Days[kind]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// cellMarkers frame the ends of a range so the selection still reads
// without color.
func cellMarkers(kind daterange.DayKind) (string, string) {
	switch kind {
	case daterange.DaySingle:
		return "[", "]"
	case daterange.DayRangeStart:
		return "[", " "
	case daterange.DayRangeEnd:
		return " ", "]"
	default:
		return " ", " "
	}
}
