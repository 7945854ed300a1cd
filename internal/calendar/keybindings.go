package calendar

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rangepick/internal/daterange"
)

// KeyMap defines the selector's key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Clear     key.Binding
	Today     key.Binding
	Last7     key.Binding
	Last30    key.Binding
	ThisMonth key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Dismiss   key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick day"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Last7: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "last 7 days"),
		),
		Last30: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "last 30 days"),
		),
		ThisMonth: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "this month"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "pgup", "<"),
			key.WithHelp("[", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]", "pgdown", ">"),
			key.WithHelp("]", "next month"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Clear, k.Today, k.Dismiss, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.PrevMonth, k.NextMonth, k.Dismiss},
		{k.Clear, k.Today, k.Last7, k.Last30, k.ThisMonth, k.Help},
	}
}

// Update routes a message to the selector. It reports whether the message
// was consumed so the host can handle everything else (quitting, resizing
// its own layout). Key presses on a closed selector are only consumed when
// they open it.
func (s *Selector) Update(p Props, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(p, msg), nil
	case tea.MouseMsg:
		return s.handleMouse(p, msg), nil
	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
	}
	return false, nil
}

func (s *Selector) handleKey(p Props, msg tea.KeyMsg) bool {
	if !s.open {
		if key.Matches(msg, s.keys.Select) {
			s.Open(p)
			return true
		}
		return false
	}

	switch {
	case key.Matches(msg, s.keys.Help):
		s.showHelp = !s.showHelp
	case key.Matches(msg, s.keys.Dismiss):
		if s.showHelp {
			s.showHelp = false
		} else {
			s.Dismiss()
		}
	case key.Matches(msg, s.keys.Up):
		s.MoveCursor(p, -7)
	case key.Matches(msg, s.keys.Down):
		s.MoveCursor(p, 7)
	case key.Matches(msg, s.keys.Left):
		s.MoveCursor(p, -1)
	case key.Matches(msg, s.keys.Right):
		s.MoveCursor(p, 1)
	case key.Matches(msg, s.keys.Select):
		if s.cursor.IsZero() {
			s.MoveCursor(p, 0)
		}
		s.ClickDay(p, s.cursor)
	case key.Matches(msg, s.keys.Clear):
		s.Clear(p)
	case key.Matches(msg, s.keys.Today):
		s.Today(p)
	case key.Matches(msg, s.keys.Last7):
		s.ApplyPreset(p, daterange.PresetLast7Days)
	case key.Matches(msg, s.keys.Last30):
		s.ApplyPreset(p, daterange.PresetLast30Days)
	case key.Matches(msg, s.keys.ThisMonth):
		s.ApplyPreset(p, daterange.PresetThisMonth)
	case key.Matches(msg, s.keys.PrevMonth):
		s.PrevMonth()
	case key.Matches(msg, s.keys.NextMonth):
		s.NextMonth()
	default:
		return false
	}
	return true
}
