// Package picker hosts the calendar selector as a full-screen program.
//
// The Model owns the selected range and hands it to the selector on every
// message, the way an application embedding the widget would.
package picker

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rangepick/internal/calendar"
	"github.com/rileyhilliard/rangepick/internal/daterange"
	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/rileyhilliard/rangepick/internal/locale"
	"github.com/rileyhilliard/rangepick/internal/logger"
	"github.com/rileyhilliard/rangepick/internal/ui"
)

// Options configure a picker session.
type Options struct {
	Initial        daterange.Range
	Bounds         daterange.Bounds
	Mode           daterange.Mode
	Placeholder    string
	Locale         locale.Locale
	WeekStart      time.Weekday
	QuitOnComplete bool
	Clock          daterange.Clock
	Logger         logger.Logger
}

// Result is what the user ended the session with.
type Result struct {
	Range     daterange.Range
	Cancelled bool
}

type keyMap struct {
	Open   key.Binding
	Accept key.Binding
	Quit   key.Binding
	Cancel key.Binding
}

var pickerKeys = keyMap{
	Open: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open calendar"),
	),
	Accept: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "accept"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q/esc", "cancel"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Accept, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is a Bubble Tea model that owns the selected range.
type Model struct {
	selector  calendar.Selector
	value     daterange.Range
	opts      Options
	help      help.Model
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewModel creates a picker model. The calendar opens right away.
func NewModel(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.Locale.Months[0] == "" {
		opts.Locale = locale.Lookup(locale.Default)
	}

	sel := calendar.New(
		calendar.WithClock(opts.Clock),
		calendar.WithLocale(opts.Locale),
		calendar.WithWeekStart(opts.WeekStart),
		calendar.WithLogger(opts.Logger),
	)

	m := Model{
		selector: sel,
		value:    opts.Initial,
		opts:     opts,
		help:     help.New(),
		width:    80,
		height:   24,
	}
	m.selector.Open(m.props())
	return m
}

// props builds the selector's props for this update. The callbacks write
// straight into m, so they must be built from the copy that Update returns.
func (m *Model) props() calendar.Props {
	return calendar.Props{
		Value:       m.value,
		Bounds:      m.opts.Bounds,
		Mode:        m.opts.Mode,
		Placeholder: m.opts.Placeholder,
		OnChange: func(r daterange.Range) {
			m.value = r
		},
		OnComplete: func(r daterange.Range) {
			m.opts.Logger.Debug("completed %s (%d days)", r, r.Days())
			if m.opts.QuitOnComplete {
				m.done = true
			}
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, pickerKeys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case !m.selector.IsOpen() && key.Matches(msg, pickerKeys.Quit):
			m.cancelled = true
			return m, tea.Quit
		case !m.selector.IsOpen() && key.Matches(msg, pickerKeys.Accept):
			if m.value.Complete() {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	_, cmd := m.selector.Update(m.props(), msg)
	if m.done {
		return m, tea.Quit
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done || m.cancelled {
		return ""
	}

	body := m.selector.View(m.props())
	if m.selector.IsOpen() {
		return body
	}

	hint := m.help.ShortHelpView(pickerKeys.ShortHelp())
	if !m.value.Complete() {
		hint = lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(m.opts.Locale.Labels.PickStart) + "\n" + hint
	}
	return body + "\n\n" + hint
}

// Value returns the range the model currently holds.
func (m Model) Value() daterange.Range {
	return m.value
}

// Result returns how the session ended.
func (m Model) Result() Result {
	return Result{Range: m.value, Cancelled: m.cancelled || !m.done}
}

// Run displays the picker on output, reading input, and returns the
// selection. The program uses the alternate screen so mouse coordinates
// line up with the calendar grid.
func Run(opts Options, output io.Writer, input io.Reader, extra ...tea.ProgramOption) (Result, error) {
	programOpts := []tea.ProgramOption{
		tea.WithOutput(output),
		tea.WithInput(input),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
	programOpts = append(programOpts, extra...)

	p := tea.NewProgram(NewModel(opts), programOpts...)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, errors.WrapWithCode(err, errors.ErrTerm,
			"Date picker failed",
			"Try running again, or pass --from/--to to 'rangepick check' instead.")
	}

	if m, ok := finalModel.(Model); ok {
		return m.Result(), nil
	}
	return Result{Cancelled: true}, nil
}
