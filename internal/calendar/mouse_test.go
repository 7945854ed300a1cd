package calendar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rangepick/internal/daterange"
	"github.com/stretchr/testify/assert"
)

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// With a Sunday week start, 2024-01-01 is the second cell of the first
// week row and 2024-02-01 is the fifth cell of the trailing month.
func TestDayAt(t *testing.T) {
	s := newTestSelector(WithOpen())

	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"jan 1", 4, gridTop, "2024-01-01"},
		{"jan 1 right edge", 7, gridTop, "2024-01-01"},
		{"jan 6", 24, gridTop, "2024-01-06"},
		{"jan 7 second row", 0, gridTop + 1, "2024-01-07"},
		{"jan 31", 12, gridTop + 4, "2024-01-31"},
		{"feb 1", monthWidth + monthGap + 16, gridTop, "2024-02-01"},
		{"padding cell", 0, gridTop, ""},
		{"gap between months", monthWidth + 1, gridTop, ""},
		{"header row", 4, gridTop - 1, ""},
		{"below grid", 4, gridTop + 6, ""},
		{"left of origin", -1, gridTop, ""},
		{"right of both months", 2*(monthWidth+monthGap) + 2, gridTop, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.DayAt(tt.x, tt.y).String())
		})
	}
}

func TestDayAt_Origin(t *testing.T) {
	s := newTestSelector(WithOpen())
	s.SetOrigin(2, 5)
	assert.Equal(t, "2024-01-01", s.DayAt(6, 5+gridTop).String())
}

func TestDayAt_Closed(t *testing.T) {
	s := newTestSelector()
	assert.True(t, s.DayAt(4, gridTop).IsZero())
}

func TestMouse_HoverAndClick(t *testing.T) {
	h := &testHost{}
	s := newTestSelector(WithOpen())

	s.Update(h.props(), press(4, gridTop)) // 2024-01-01
	assert.Equal(t, daterange.Range{From: d("2024-01-01")}, h.value)

	s.Update(h.props(), motion(24, gridTop)) // 2024-01-06
	assert.Equal(t, d("2024-01-06"), s.Hover())

	s.Update(h.props(), motion(monthWidth+1, gridTop)) // gap
	assert.True(t, s.Hover().IsZero(), "leaving a cell clears the hover")

	s.Update(h.props(), press(24, gridTop))
	assert.Equal(t, daterange.Span(d("2024-01-01"), d("2024-01-06")), h.value)
	assert.Len(t, h.completes, 1)
	assert.False(t, s.IsOpen())
}

func TestMouse_PressOnTriggerOpens(t *testing.T) {
	s := newTestSelector()

	handled, _ := s.Update(Props{}, press(3, 0))

	assert.True(t, handled)
	assert.True(t, s.IsOpen())
}

func TestMouse_PressOffGridIgnored(t *testing.T) {
	h := &testHost{}
	s := newTestSelector(WithOpen())

	handled, _ := s.Update(h.props(), press(0, 1))

	assert.False(t, handled)
	assert.Empty(t, h.changes)
}

func TestMouse_Wheel(t *testing.T) {
	s := newTestSelector(WithOpen())
	start := s.Month()

	s.Update(Props{}, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, start.Add(1), s.Month())

	s.Update(Props{}, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, start, s.Month())
}
