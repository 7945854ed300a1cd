package calendar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rangepick/internal/daterange"
)

// DayAt maps screen coordinates to the day cell under them. It returns the
// zero Date for anything that is not a day (headers, gaps, padding cells)
// or when the popover is closed.
func (s Selector) DayAt(x, y int) daterange.Date {
	if !s.open {
		return daterange.Date{}
	}
	col := x - s.originX
	row := y - s.originY - gridTop
	if col < 0 || row < 0 {
		return daterange.Date{}
	}

	idx := col / (monthWidth + monthGap)
	within := col % (monthWidth + monthGap)
	if idx > 1 || within >= monthWidth {
		return daterange.Date{}
	}

	grid := daterange.Grid(s.Months()[idx], s.weekStart)
	if row >= len(grid) {
		return daterange.Date{}
	}
	return grid[row][within/cellWidth]
}

func (s *Selector) handleMouse(p Props, msg tea.MouseMsg) bool {
	if !s.open {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == s.originY {
			s.Open(p)
			return true
		}
		return false
	}

	d := s.DayAt(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionMotion:
		if d.IsZero() {
			s.LeaveDay()
		} else {
			s.HoverDay(p, d)
		}
	case msg.Button == tea.MouseButtonWheelUp:
		s.PrevMonth()
	case msg.Button == tea.MouseButtonWheelDown:
		s.NextMonth()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if d.IsZero() {
			return false
		}
		if p.Bounds.Contains(d) {
			s.cursor = d
		}
		s.ClickDay(p, d)
	default:
		return false
	}
	return true
}
