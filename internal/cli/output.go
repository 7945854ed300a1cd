package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/rangepick/internal/daterange"
)

// RangeOutput is the data part of a JSON result for a range.
type RangeOutput struct {
	From  daterange.Date `json:"from"`
	To    daterange.Date `json:"to"`
	Days  int            `json:"days"`
	Phase string         `json:"phase"`
	Label string         `json:"label"`
}

func newRangeOutput(s *settings, r daterange.Range) RangeOutput {
	return RangeOutput{
		From:  r.From,
		To:    r.To,
		Days:  r.Days(),
		Phase: daterange.PhaseOf(r).String(),
		Label: rangeLabel(s, r),
	}
}

// rangeLabel is the trigger text for r: a single date in single mode,
// otherwise the placeholder until both ends are set.
func rangeLabel(s *settings, r daterange.Range) string {
	if s.Mode == daterange.ModeSingle && r.Complete() && r.From.Equal(r.To) {
		return s.Locale.FormatDate(r.From)
	}
	return s.Locale.FormatRange(r, s.Placeholder)
}

// writeRange prints a picked range: ISO dates separated by a space, or a
// single date in single mode, or the JSON envelope in machine mode.
func writeRange(w io.Writer, s *settings, r daterange.Range) error {
	if machineMode {
		return WriteJSONSuccess(w, newRangeOutput(s, r))
	}
	if s.Mode == daterange.ModeSingle && r.From.Equal(r.To) {
		_, err := fmt.Fprintln(w, r.From)
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s\n", r.From, r.To)
	return err
}
