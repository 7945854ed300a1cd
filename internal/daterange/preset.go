package daterange

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/rangepick/internal/errors"
)

// Preset is a named shortcut that picks a full range relative to today.
type Preset int

const (
	PresetLast7Days Preset = iota
	PresetLast30Days
	PresetThisMonth
)

// Presets lists every preset in display order.
var Presets = []Preset{PresetLast7Days, PresetLast30Days, PresetThisMonth}

var presetNames = map[Preset]string{
	PresetLast7Days:  "last7",
	PresetLast30Days: "last30",
	PresetThisMonth:  "month",
}

// String returns the name used on the command line.
func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return "unknown"
}

// Range returns the range p selects when today is the given day.
// The "last N days" presets start N days before today and end today.
func (p Preset) Range(today Date) Range {
	switch p {
	case PresetLast30Days:
		return Span(today.AddDays(-30), today)
	case PresetThisMonth:
		return Span(today.MonthOf().First(), today)
	default:
		return Span(today.AddDays(-7), today)
	}
}

// ParsePreset finds a preset by name, ignoring case.
func ParsePreset(name string) (Preset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range Presets {
		if presetNames[p] == name {
			return p, nil
		}
	}

	names := make([]string, 0, len(Presets))
	for _, p := range Presets {
		names = append(names, p.String())
	}
	return 0, errors.New(errors.ErrInput,
		fmt.Sprintf("Unknown preset '%s'", name),
		"Pick one of: "+strings.Join(names, ", "))
}
