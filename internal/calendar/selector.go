package calendar

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/rileyhilliard/rangepick/internal/daterange"
	"github.com/rileyhilliard/rangepick/internal/locale"
	"github.com/rileyhilliard/rangepick/internal/logger"
)

// Selector is the range picker widget. Its zero value is not usable; call New.
type Selector struct {
	open     bool
	month    daterange.Month // leading month; the trailing one is month+1
	hover    daterange.Date
	cursor   daterange.Date
	showHelp bool

	originX int
	originY int

	clock     daterange.Clock
	locale    locale.Locale
	weekStart time.Weekday
	keys      KeyMap
	help      help.Model
	styles    Styles
	log       logger.Logger
}

// Option configures a Selector.
type Option func(*Selector)

// WithClock sets the clock used for "today".
func WithClock(c daterange.Clock) Option {
	return func(s *Selector) { s.clock = c }
}

// WithLocale sets month names, weekday headers, labels and date formats.
func WithLocale(l locale.Locale) Option {
	return func(s *Selector) { s.locale = l }
}

// WithWeekStart sets the first column of the grid.
func WithWeekStart(d time.Weekday) Option {
	return func(s *Selector) { s.weekStart = d }
}

// WithLogger sets the logger for transition traces.
func WithLogger(l logger.Logger) Option {
	return func(s *Selector) { s.log = l }
}

// WithMonth sets the initially displayed leading month.
func WithMonth(m daterange.Month) Option {
	return func(s *Selector) { s.month = m }
}

// WithOpen starts the popover open.
func WithOpen() Option {
	return func(s *Selector) { s.open = true }
}

// WithKeys replaces the default key map.
func WithKeys(k KeyMap) Option {
	return func(s *Selector) { s.keys = k }
}

// New creates a Selector showing the current month.
func New(opts ...Option) Selector {
	s := Selector{
		clock:     time.Now,
		locale:    locale.Lookup(locale.Default),
		weekStart: time.Sunday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    DefaultStyles(),
		log:       logger.Noop(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.month == (daterange.Month{}) {
		s.month = s.today().MonthOf()
	}
	return s
}

func (s Selector) today() daterange.Date {
	return daterange.Today(s.clock)
}

// IsOpen reports whether the calendar popover is showing.
func (s Selector) IsOpen() bool { return s.open }

// Month returns the leading displayed month.
func (s Selector) Month() daterange.Month { return s.month }

// Months returns the leading and trailing displayed months.
func (s Selector) Months() [2]daterange.Month {
	return [2]daterange.Month{s.month, s.month.Add(1)}
}

// Hover returns the day under the pointer, or the zero Date.
func (s Selector) Hover() daterange.Date { return s.hover }

// Cursor returns the keyboard cursor day.
func (s Selector) Cursor() daterange.Date { return s.cursor }

// Locale returns the locale the selector renders with.
func (s Selector) Locale() locale.Locale { return s.locale }

// SetOrigin tells the selector where its view starts on screen so mouse
// coordinates can be mapped to day cells.
func (s *Selector) SetOrigin(x, y int) {
	s.originX, s.originY = x, y
}

// Open shows the popover and places the cursor on the start of the
// selection, or on today, inside the bounds. A view that still shows the
// selection start is kept as it was left.
func (s *Selector) Open(p Props) {
	s.open = true
	start := p.Value.From
	switch {
	case !start.IsZero() && !s.shows(start.MonthOf()):
		s.moveTo(p.Bounds.Clamp(start))
	case s.cursor.IsZero():
		if start.IsZero() {
			start = s.today()
		}
		s.moveTo(p.Bounds.Clamp(start))
	}
	s.hover = daterange.Date{}
}

func (s Selector) shows(m daterange.Month) bool {
	shown := s.Months()
	return m == shown[0] || m == shown[1]
}

func (s *Selector) moveTo(d daterange.Date) {
	s.cursor = d
	s.month = d.MonthOf()
}

// Dismiss hides the popover without touching the selection.
func (s *Selector) Dismiss() {
	s.open = false
	s.hover = daterange.Date{}
}

// ClickDay handles a click on day d.
func (s *Selector) ClickDay(p Props, d daterange.Date) {
	s.apply(p, daterange.Click(d))
}

// Clear empties the selection.
func (s *Selector) Clear(p Props) {
	s.apply(p, daterange.ClearEvent())
}

// Today selects today as a one-day range.
func (s *Selector) Today(p Props) {
	s.apply(p, daterange.TodayEvent())
}

// ApplyPreset selects the range for pr.
func (s *Selector) ApplyPreset(p Props, pr daterange.Preset) {
	s.apply(p, daterange.PresetEvent(pr))
}

// HoverDay records the day under the pointer. Disabled days do not take
// hover, same as an inert button.
func (s *Selector) HoverDay(p Props, d daterange.Date) {
	if !p.Bounds.Contains(d) {
		s.hover = daterange.Date{}
		return
	}
	s.hover = d
}

// LeaveDay clears the hover day.
func (s *Selector) LeaveDay() {
	s.hover = daterange.Date{}
}

// PrevMonth moves the view one month back.
func (s *Selector) PrevMonth() {
	s.month = s.month.Add(-1)
}

// NextMonth moves the view one month forward.
func (s *Selector) NextMonth() {
	s.month = s.month.Add(1)
}

// MoveCursor shifts the keyboard cursor by n days, staying within the
// bounds, and scrolls the view so the cursor stays visible. The cursor
// acts as the pointer, so it also drives the hover preview.
func (s *Selector) MoveCursor(p Props, n int) {
	if s.cursor.IsZero() {
		s.cursor = p.Bounds.Clamp(s.today())
	} else {
		s.cursor = p.Bounds.Clamp(s.cursor.AddDays(n))
	}

	cm := s.cursor.MonthOf()
	switch {
	case cm.Before(s.month):
		s.month = cm
	case s.month.Add(1).Before(cm):
		s.month = cm.Add(-1)
	}
	s.HoverDay(p, s.cursor)
}

func (s *Selector) apply(p Props, ev daterange.Event) {
	before := p.Value
	res := daterange.Transition(p.Value, ev, p.rules(s.today()))

	if res.Changed && p.OnChange != nil {
		p.OnChange(res.Value)
	}
	if res.Completed && p.OnComplete != nil {
		p.OnComplete(res.Value)
	}
	if res.Close {
		s.Dismiss()
	}

	s.log.Debug("%s %s: %s -> %s (%s)", ev.Kind, ev.Day, before, res.Value, daterange.PhaseOf(res.Value))
}
