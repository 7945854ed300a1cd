package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/rangepick/internal/daterange"
	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/spf13/cobra"
)

// RangeFlags hold a range given on the command line.
type RangeFlags struct {
	From string
	To   string
}

// BoundsFlags hold selectable-day limits given on the command line.
type BoundsFlags struct {
	Min string
	Max string
}

// DisplayFlags override how the picker looks and behaves.
type DisplayFlags struct {
	Locale      string
	WeekStart   string
	Mode        string
	Placeholder string
	Today       string
}

// AddRangeFlags registers --from and --to on a command.
func AddRangeFlags(cmd *cobra.Command, flags *RangeFlags) {
	cmd.Flags().StringVar(&flags.From, "from", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.To, "to", "", "range end (YYYY-MM-DD)")
}

// AddBoundsFlags registers --min and --max on a command.
func AddBoundsFlags(cmd *cobra.Command, flags *BoundsFlags) {
	cmd.Flags().StringVar(&flags.Min, "min", "", "earliest selectable day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.Max, "max", "", "latest selectable day (YYYY-MM-DD)")
}

// AddDisplayFlags registers --locale, --week-start, --mode, --placeholder and --today.
func AddDisplayFlags(cmd *cobra.Command, flags *DisplayFlags) {
	cmd.Flags().StringVar(&flags.Locale, "locale", "", "BCP 47 locale tag (e.g., pt-BR, en-US)")
	cmd.Flags().StringVar(&flags.WeekStart, "week-start", "", "first day of the week: sunday or monday")
	cmd.Flags().StringVar(&flags.Mode, "mode", "", "selection mode: range or single")
	cmd.Flags().StringVar(&flags.Placeholder, "placeholder", "", "label shown until a range is picked")
	cmd.Flags().StringVar(&flags.Today, "today", "", "treat this day as today (YYYY-MM-DD)")
}

// ParseDateFlag parses an ISO date flag. Empty means no date.
func ParseDateFlag(name, value string) (daterange.Date, error) {
	d, err := daterange.ParseDate(value)
	if err != nil {
		return daterange.Date{}, errors.WrapWithCode(err, errors.ErrInput,
			fmt.Sprintf("--%s '%s' isn't a date", name, value),
			"Use the YYYY-MM-DD format, like 2024-01-31.")
	}
	return d, nil
}

// ParseRange parses --from/--to into a range and checks it is consistent.
// Both empty gives an empty range; --from alone gives a range in progress.
func ParseRange(flags RangeFlags) (daterange.Range, error) {
	from, err := ParseDateFlag("from", flags.From)
	if err != nil {
		return daterange.Range{}, err
	}
	to, err := ParseDateFlag("to", flags.To)
	if err != nil {
		return daterange.Range{}, err
	}

	r := daterange.Range{From: from, To: to}
	if err := r.Validate(); err != nil {
		return daterange.Range{}, err
	}
	return r, nil
}

// ParseBounds parses --min/--max. A flag that is set replaces that side
// of base; an unset flag keeps it.
func ParseBounds(flags BoundsFlags, base daterange.Bounds) (daterange.Bounds, error) {
	b := base
	if flags.Min != "" {
		d, err := ParseDateFlag("min", flags.Min)
		if err != nil {
			return daterange.Bounds{}, err
		}
		b.Min = d
	}
	if flags.Max != "" {
		d, err := ParseDateFlag("max", flags.Max)
		if err != nil {
			return daterange.Bounds{}, err
		}
		b.Max = d
	}
	if err := b.Validate(); err != nil {
		return daterange.Bounds{}, err
	}
	return b, nil
}

// ParseMode parses a selection mode name.
func ParseMode(s string) (daterange.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "range":
		return daterange.ModeRange, nil
	case "single":
		return daterange.ModeSingle, nil
	}
	return daterange.ModeRange, errors.New(errors.ErrInput,
		fmt.Sprintf("'%s' isn't a selection mode", s),
		"Use --mode range or --mode single.")
}

// ParseWeekStart parses a first-day-of-week name.
func ParseWeekStart(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	}
	return time.Sunday, errors.New(errors.ErrInput,
		fmt.Sprintf("'%s' isn't a week start", s),
		"Use --week-start sunday or --week-start monday.")
}
