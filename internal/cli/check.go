package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/rangepick/internal/daterange"
	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/rileyhilliard/rangepick/internal/ui"
	"github.com/rileyhilliard/rangepick/internal/util"
)

// checkOptions holds the flags of the check command.
type checkOptions struct {
	Range  RangeFlags
	Bounds BoundsFlags
}

// CheckOutput is the data part of 'check --json'.
type CheckOutput struct {
	Valid  bool           `json:"valid"`
	Range  RangeOutput    `json:"range"`
	Min    daterange.Date `json:"min"`
	Max    daterange.Date `json:"max"`
	Checks []ui.CheckRow  `json:"-"`
	Failed []string       `json:"failed,omitempty"`
}

// checkCommand validates a range against the bounds. It reports every
// check and returns a RANGE error if any failed.
func checkCommand(w io.Writer, opts checkOptions) error {
	s, err := loadSettings(DisplayFlags{}, opts.Bounds)
	if err != nil {
		return err
	}

	r, err := ParseRange(opts.Range)
	if err != nil {
		return err
	}

	out := CheckOutput{
		Valid:  true,
		Range:  newRangeOutput(s, r),
		Min:    s.Bounds.Min,
		Max:    s.Bounds.Max,
		Checks: rangeChecks(r, s.Bounds),
	}
	for _, c := range out.Checks {
		if c.Status == "fail" {
			out.Valid = false
			out.Failed = append(out.Failed, c.Message)
		}
	}

	if machineMode {
		if !out.Valid {
			if err := WriteJSONError(w, ErrCodeRangeInvalid, "Range is outside the selectable days", "", out); err != nil {
				return err
			}
			return errors.NewExitError(1)
		}
		return WriteJSONSuccess(w, out)
	}

	fmt.Fprint(w, ui.RenderChecks("Range "+r.String(), out.Checks))
	if !out.Valid {
		return errors.NewExitError(1)
	}
	return nil
}

// rangeChecks lists what holds and what doesn't for r inside b.
// ParseRange has already rejected inconsistent ranges.
func rangeChecks(r daterange.Range, b daterange.Bounds) []ui.CheckRow {
	if r.Empty() {
		return []ui.CheckRow{{
			Status:     "warn",
			Message:    "range is empty",
			Suggestion: "Pass --from (and --to) to check a selection.",
		}}
	}

	rows := []ui.CheckRow{boundCheck("start", r.From, b)}
	if r.To.IsZero() {
		rows = append(rows, ui.CheckRow{
			Status:     "warn",
			Message:    "end is not set yet (selection in progress)",
			Suggestion: "Pass --to to complete the range.",
		})
		return rows
	}

	rows = append(rows, boundCheck("end", r.To, b))
	rows = append(rows, ui.CheckRow{
		Status:  "pass",
		Message: fmt.Sprintf("range spans %d %s", r.Days(), util.Pluralize(r.Days(), "day", "days")),
	})
	return rows
}

func boundCheck(name string, d daterange.Date, b daterange.Bounds) ui.CheckRow {
	switch {
	case !b.Min.IsZero() && d.Before(b.Min):
		return ui.CheckRow{
			Status:     "fail",
			Message:    fmt.Sprintf("%s %s is before the minimum %s", name, d, b.Min),
			Suggestion: fmt.Sprintf("Pick a %s on or after %s.", name, b.Min),
		}
	case !b.Max.IsZero() && d.After(b.Max):
		return ui.CheckRow{
			Status:     "fail",
			Message:    fmt.Sprintf("%s %s is after the maximum %s", name, d, b.Max),
			Suggestion: fmt.Sprintf("Pick a %s on or before %s.", name, b.Max),
		}
	}
	return ui.CheckRow{Status: "pass", Message: fmt.Sprintf("%s %s is selectable", name, d)}
}
