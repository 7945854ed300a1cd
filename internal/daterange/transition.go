package daterange

// Mode selects between picking a range and picking a single day.
type Mode int

const (
	ModeRange Mode = iota
	ModeSingle
)

func (m Mode) String() string {
	if m == ModeSingle {
		return "single"
	}
	return "range"
}

// EventKind identifies a user action that can change the selection.
type EventKind int

const (
	EventClick EventKind = iota
	EventClear
	EventToday
	EventPreset
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventClear:
		return "clear"
	case EventToday:
		return "today"
	case EventPreset:
		return "preset"
	default:
		return "unknown"
	}
}

// Event is a selection action. Day is set for clicks; Preset for presets.
type Event struct {
	Kind   EventKind
	Day    Date
	Preset Preset
}

func Click(d Date) Event         { return Event{Kind: EventClick, Day: d} }
func ClearEvent() Event          { return Event{Kind: EventClear} }
func TodayEvent() Event          { return Event{Kind: EventToday} }
func PresetEvent(p Preset) Event { return Event{Kind: EventPreset, Preset: p} }

// Rules are the fixed inputs a transition is evaluated against.
type Rules struct {
	Bounds Bounds
	Today  Date
	Mode   Mode
}

// Result is the outcome of a transition.
//
// Changed means the host should be given Value through its change
// callback. Completed means Value is a finished range and the completion
// callback fires. Close asks the popover to hide.
type Result struct {
	Value     Range
	Changed   bool
	Completed bool
	Close     bool
}

// Transition returns the next selection for ev. It does not modify value.
// A value that breaks the Range invariants is treated as empty.
func Transition(value Range, ev Event, rules Rules) Result {
	value = value.normalized()

	switch ev.Kind {
	case EventClick:
		return click(value, ev.Day, rules)
	case EventClear:
		return Result{Value: Range{}, Changed: true}
	case EventToday:
		return completed(Single(rules.Today))
	case EventPreset:
		return completed(ev.Preset.Range(rules.Today))
	default:
		return Result{Value: value}
	}
}

func click(value Range, d Date, rules Rules) Result {
	if !rules.Bounds.Contains(d) {
		return Result{Value: value}
	}

	if rules.Mode == ModeSingle {
		return completed(Single(d))
	}

	if PhaseOf(value) == Selecting && !d.Before(value.From) {
		return completed(Span(value.From, d))
	}

	// Empty, complete, or a click before the start: begin a new selection.
	return Result{Value: Range{From: d}, Changed: true}
}

func completed(r Range) Result {
	return Result{Value: r, Changed: true, Completed: true, Close: true}
}
