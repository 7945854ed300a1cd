package daterange

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/rangepick/internal/errors"
)

// DateLayout is the ISO layout used for parsing and printing dates.
const DateLayout = "2006-01-02"

// Date is a calendar day. The zero value means no date.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date for year, month and day. Out of range values are
// normalized the way time.Date does it (January 32 becomes February 1).
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses an ISO date (YYYY-MM-DD). An empty string yields the
// zero Date and no error.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errors.WrapWithCode(err, errors.ErrInput,
			fmt.Sprintf("'%s' doesn't look like a date", s),
			"Use the YYYY-MM-DD format, like 2024-01-15.")
	}
	return FromTime(t), nil
}

// MustParseDate is ParseDate for literals known to be valid. It panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether d is the null date.
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(int(d.month) - int(other.month))
	default:
		return sign(d.day - other.day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d == other }

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return NewDate(d.year, d.month, d.day+n)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// MonthOf returns the month d falls in.
func (d Date) MonthOf() Month {
	return Month{Year: d.year, Month: d.month}
}

// String returns d in ISO format, or an empty string for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// MarshalText implements encoding.TextMarshaler so dates serialize as ISO strings.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Clock returns the current time. Tests replace it to pin "today".
type Clock func() time.Time

// Today returns the current calendar day in the local zone.
func Today(clock Clock) Date {
	if clock == nil {
		clock = time.Now
	}
	return FromTime(clock())
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
