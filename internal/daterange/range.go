package daterange

import (
	"fmt"

	"github.com/rileyhilliard/rangepick/internal/errors"
)

// Range is a selection of days. A zero From or To means that end is not
// picked yet. A valid Range never has To without From, and From never
// comes after To.
type Range struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// Span returns the complete range from..to.
func Span(from, to Date) Range {
	return Range{From: from, To: to}
}

// Single returns the one-day range for d.
func Single(d Date) Range {
	return Range{From: d, To: d}
}

// Empty reports whether neither end is set.
func (r Range) Empty() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Complete reports whether both ends are set.
func (r Range) Complete() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// Contains reports whether d lies within a complete range, ends included.
func (r Range) Contains(d Date) bool {
	if !r.Complete() || d.IsZero() {
		return false
	}
	return !d.Before(r.From) && !d.After(r.To)
}

// Days returns the number of days in a complete range, ends included.
// Partial and empty ranges have zero days.
func (r Range) Days() int {
	if !r.Complete() {
		return 0
	}
	return int(r.To.Time().Sub(r.From.Time()).Hours()/24) + 1
}

// Validate checks the shape invariants. Hosts call it on values that come
// from outside the picker (flags, config); the picker itself never
// produces an invalid range.
func (r Range) Validate() error {
	if r.From.IsZero() && !r.To.IsZero() {
		return errors.New(errors.ErrRange,
			fmt.Sprintf("Range ends on %s but has no start date", r.To),
			"Set a start date too, or leave both ends empty.")
	}
	if r.Complete() && r.From.After(r.To) {
		return errors.New(errors.ErrRange,
			fmt.Sprintf("Range starts on %s, after it ends on %s", r.From, r.To),
			"Swap the dates so the start comes first.")
	}
	return nil
}

// normalized returns r, or the empty range if r breaks an invariant.
func (r Range) normalized() Range {
	if r.Validate() != nil {
		return Range{}
	}
	return r
}

func (r Range) String() string {
	switch {
	case r.Empty():
		return "{}"
	case r.To.IsZero():
		return fmt.Sprintf("{%s ..}", r.From)
	default:
		return fmt.Sprintf("{%s .. %s}", r.From, r.To)
	}
}

// Phase says whether a selection is waiting for its second click.
type Phase int

const (
	Idle Phase = iota
	Selecting
)

func (p Phase) String() string {
	switch p {
	case Selecting:
		return "selecting"
	default:
		return "idle"
	}
}

// PhaseOf derives the phase from a range: Selecting when only From is set,
// Idle otherwise.
func PhaseOf(r Range) Phase {
	if !r.From.IsZero() && r.To.IsZero() {
		return Selecting
	}
	return Idle
}

// Bounds limits which days can be clicked. Both ends are inclusive and a
// zero end is open.
type Bounds struct {
	Min Date
	Max Date
}

// Contains reports whether d is within the bounds.
func (b Bounds) Contains(d Date) bool {
	if d.IsZero() {
		return false
	}
	if !b.Min.IsZero() && d.Before(b.Min) {
		return false
	}
	if !b.Max.IsZero() && d.After(b.Max) {
		return false
	}
	return true
}

// Validate rejects bounds whose minimum comes after the maximum.
func (b Bounds) Validate() error {
	if !b.Min.IsZero() && !b.Max.IsZero() && b.Min.After(b.Max) {
		return errors.New(errors.ErrRange,
			fmt.Sprintf("Minimum date %s is after maximum date %s", b.Min, b.Max),
			"Swap the bounds or drop one of them.")
	}
	return nil
}

// Clamp returns d moved inside the bounds.
func (b Bounds) Clamp(d Date) Date {
	if !b.Min.IsZero() && d.Before(b.Min) {
		return b.Min
	}
	if !b.Max.IsZero() && d.After(b.Max) {
		return b.Max
	}
	return d
}
