package daterange

import (
	"fmt"
	"time"
)

// Month is a year and month, used for the month a calendar is showing.
type Month struct {
	Year  int
	Month time.Month
}

// Add returns m shifted by n months.
func (m Month) Add(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// First returns the first day of m.
func (m Month) First() Date {
	return NewDate(m.Year, m.Month, 1)
}

// Last returns the last day of m.
func (m Month) Last() Date {
	return NewDate(m.Year, m.Month, m.Days())
}

// Days returns the number of days in m.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contains reports whether d falls in m.
func (m Month) Contains(d Date) bool {
	return d.year == m.Year && d.month == m.Month
}

// Before reports whether m comes before other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Grid lays out m as week rows starting on weekStart. Cells outside the
// month hold the zero Date.
func Grid(m Month, weekStart time.Weekday) [][7]Date {
	first := m.First()
	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7

	var rows [][7]Date
	var row [7]Date
	col := offset
	for day := 1; day <= m.Days(); day++ {
		row[col] = NewDate(m.Year, m.Month, day)
		col++
		if col == 7 {
			rows = append(rows, row)
			row = [7]Date{}
			col = 0
		}
	}
	if col > 0 {
		rows = append(rows, row)
	}
	return rows
}
