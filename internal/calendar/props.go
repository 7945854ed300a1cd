package calendar

import (
	"github.com/rileyhilliard/rangepick/internal/daterange"
)

// Props is what the host passes in on every call.
type Props struct {
	// Value is the current selection. The widget never modifies it.
	Value daterange.Range

	// OnChange receives every new value: a start pick, an end pick, a
	// restart, a clear, the today shortcut or a preset.
	OnChange func(daterange.Range)

	// OnComplete fires once when a single action finishes a range.
	OnComplete func(daterange.Range)

	// Bounds disables days outside [Min, Max].
	Bounds daterange.Bounds

	// Placeholder is shown on the trigger while no full range is selected.
	// Empty means the locale's default.
	Placeholder string

	Mode daterange.Mode
}

// Validate checks a host-supplied value and bounds. Hosts should call it
// before handing outside input to the widget.
func (p Props) Validate() error {
	if err := p.Value.Validate(); err != nil {
		return err
	}
	return p.Bounds.Validate()
}

func (p Props) rules(today daterange.Date) daterange.Rules {
	return daterange.Rules{Bounds: p.Bounds, Today: today, Mode: p.Mode}
}
