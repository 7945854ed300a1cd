package daterange

// DayKind is the visual state of a day cell.
type DayKind int

const (
	DayBlank DayKind = iota // padding cell outside the month
	DayBase
	DayToday
	DayHoverPreview
	DayInRange
	DayRangeEnd
	DayRangeStart
	DaySingle
	DayDisabled
)

func (k DayKind) String() string {
	switch k {
	case DayBlank:
		return "blank"
	case DayBase:
		return "base"
	case DayToday:
		return "today"
	case DayHoverPreview:
		return "hover-preview"
	case DayInRange:
		return "in-range"
	case DayRangeEnd:
		return "range-end"
	case DayRangeStart:
		return "range-start"
	case DaySingle:
		return "single"
	case DayDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Selected reports whether k marks an end of the range.
func (k DayKind) Selected() bool {
	return k == DaySingle || k == DayRangeStart || k == DayRangeEnd
}

// Classify returns the visual state of d. Precedence, highest first:
// disabled, single, start, end, in range, hover preview, today.
func Classify(d Date, value Range, hover Date, b Bounds, today Date) DayKind {
	if d.IsZero() {
		return DayBlank
	}
	if !b.Contains(d) {
		return DayDisabled
	}

	value = value.normalized()
	from, to := value.From, value.To
	isStart := !from.IsZero() && d.Equal(from)
	isEnd := !to.IsZero() && d.Equal(to)

	switch {
	case isStart && isEnd:
		return DaySingle
	case isStart:
		return DayRangeStart
	case isEnd:
		return DayRangeEnd
	case value.Complete() && d.After(from) && d.Before(to):
		return DayInRange
	case inHoverPreview(d, value, hover):
		return DayHoverPreview
	case d.Equal(today):
		return DayToday
	}
	return DayBase
}

func inHoverPreview(d Date, value Range, hover Date) bool {
	if PhaseOf(value) != Selecting || hover.IsZero() || hover.Before(value.From) {
		return false
	}
	return d.After(value.From) && !d.After(hover)
}
