package calendar

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rangepick/internal/daterange"
	"github.com/rileyhilliard/rangepick/internal/ui"
)

// View renders the trigger and, when open, the two-month calendar.
func (s Selector) View(p Props) string {
	lines := []string{s.renderTrigger(p)}
	if !s.open {
		return lines[0]
	}

	today := s.today()
	months := s.Months()

	lines = append(lines, s.renderTitles(months))
	lines = append(lines, s.renderWeekdays())

	grids := [2][][7]daterange.Date{
		daterange.Grid(months[0], s.weekStart),
		daterange.Grid(months[1], s.weekStart),
	}
	rows := max(len(grids[0]), len(grids[1]))
	blank := strings.Repeat(" ", monthWidth)
	for r := 0; r < rows; r++ {
		var parts [2]string
		for i, g := range grids {
			if r < len(g) {
				parts[i] = s.renderWeek(p, g[r], today)
			} else {
				parts[i] = blank
			}
		}
		lines = append(lines, parts[0]+strings.Repeat(" ", monthGap)+parts[1])
	}

	lines = append(lines, "", s.renderStatus(p), s.renderActions(p), "")
	if s.showHelp {
		lines = append(lines, s.help.FullHelpView(s.keys.FullHelp()))
	} else {
		lines = append(lines, s.help.ShortHelpView(s.keys.ShortHelp()))
	}

	return strings.Join(lines, "\n")
}

func (s Selector) renderTrigger(p Props) string {
	label := s.locale.FormatRange(p.Value, p.Placeholder)
	if p.Mode == daterange.ModeSingle && p.Value.Complete() {
		label = s.locale.FormatDate(p.Value.From)
	}
	style := s.styles.Trigger
	if !p.Value.Complete() {
		style = s.styles.Placeholder
	}
	return style.Render(ui.SymbolCalendar + " " + label)
}

func (s Selector) renderTitles(months [2]daterange.Month) string {
	lead := s.styles.Nav.Render("‹") +
		s.styles.Title.Render(center(s.locale.MonthTitle(months[0]), monthWidth-2)) +
		s.styles.Nav.Render("›")
	trail := s.styles.Title.Render(center(s.locale.MonthTitle(months[1]), monthWidth))
	return lead + strings.Repeat(" ", monthGap) + trail
}

func (s Selector) renderWeekdays() string {
	var b strings.Builder
	for _, name := range s.locale.WeekdayHeader(s.weekStart) {
		b.WriteString(padRight(" "+name, cellWidth))
	}
	header := s.styles.Weekday.Render(b.String())
	return header + strings.Repeat(" ", monthGap) + header
}

func (s Selector) renderWeek(p Props, week [7]daterange.Date, today daterange.Date) string {
	var b strings.Builder
	for _, d := range week {
		b.WriteString(s.renderDay(p, d, today))
	}
	return b.String()
}

func (s Selector) renderDay(p Props, d, today daterange.Date) string {
	if d.IsZero() {
		return strings.Repeat(" ", cellWidth)
	}
	kind := daterange.Classify(d, p.Value, s.hover, p.Bounds, today)
	left, right := cellMarkers(kind)

	style := s.styles.day(kind)
	if d.Equal(s.cursor) && kind != daterange.DayDisabled {
		style = style.Reverse(true)
	}
	return left + style.Render(fmt.Sprintf("%2d", d.Day())) + right
}

func (s Selector) renderStatus(p Props) string {
	l := s.locale
	v := p.Value
	switch {
	case daterange.PhaseOf(v) == daterange.Selecting:
		return s.styles.Status.Render(l.FormatDate(v.From) + l.Separator + "… " + l.Labels.PickEnd)
	case v.Complete():
		return s.styles.Status.Render(l.FormatRange(v, p.Placeholder))
	default:
		return s.styles.Status.Render(l.Labels.PickStart)
	}
}

func (s Selector) renderActions(p Props) string {
	l := s.locale.Labels
	action := func(k, label string) string {
		return s.styles.ActionKey.Render(k) + " " + s.styles.Action.Render(label)
	}

	parts := []string{action("c", l.Clear), action("t", l.Today)}
	if p.Mode == daterange.ModeRange {
		for i, pr := range daterange.Presets {
			parts = append(parts, action(fmt.Sprint(i+1), s.locale.PresetLabel(pr)))
		}
	}
	parts = append(parts, action("esc", l.Close))
	return strings.Join(parts, lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(" · "))
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
