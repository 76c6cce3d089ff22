package grid

import (
	"errors"
	"time"
)

// SlotRange is a half-open span of slot indices: [Start, End). Always
// satisfies 0 <= Start < End <= SlotCount for ranges returned by
// MapInterval.
type SlotRange struct {
	Start int
	End   int
}

// Span is the number of slots the range covers.
func (r SlotRange) Span() int { return r.End - r.Start }

// ErrOutOfRange reports an interval entirely after business hours. Intervals
// entirely before hours do not get this treatment: they pin to slot 0, which
// is a rendering approximation carried over deliberately so early drop-offs
// remain visible at the top of the day.
var ErrOutOfRange = errors.New("grid: interval outside business hours")

// MapInterval maps a start/end timestamp pair onto the slot grid for hours.
//
// Only the wall-clock minutes of each timestamp matter: seconds are
// discarded and all arithmetic is integer minutes. Start slots floor,
// end slots ceil, and the result is clipped to [0, SlotCount]. An interval
// shorter than one slot (including zero duration) still occupies one slot.
func MapInterval(start, end time.Time, hours BusinessHours) (SlotRange, error) {
	startMinutes := start.Hour()*60 + start.Minute()
	endMinutes := end.Hour()*60 + end.Minute()

	slotCount := hours.SlotCount()

	rawStart := floorDiv(startMinutes-hours.DayStartMinutes, hours.SlotMinutes)
	rawEnd := ceilDiv(endMinutes-hours.DayStartMinutes, hours.SlotMinutes)

	if rawStart >= slotCount {
		return SlotRange{}, ErrOutOfRange
	}

	r := SlotRange{Start: max(rawStart, 0), End: min(rawEnd, slotCount)}

	// Minimum-span rule: every placed appointment occupies at least one slot.
	if r.End <= r.Start {
		r.End = r.Start + 1
	}
	return r, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
