package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// BusinessHours is the day window the grid renders, expressed in minutes
// from midnight. It is configuration, not a constant: callers supply it per
// deployment (the reference deployment uses 08:00-17:00 with 30 minute
// slots, 18 slots per day).
type BusinessHours struct {
	DayStartMinutes int
	DayEndMinutes   int
	SlotMinutes     int
}

var (
	ErrInvalidHours = errors.New("grid: day end must be after day start")
	ErrInvalidSlot  = errors.New("grid: slot duration must be positive")
)

// Validate checks the structural invariants. A day span that is not evenly
// divisible by the slot duration is legal; SlotCount rounds up and the final
// row is a partial slot rather than being dropped.
func (h BusinessHours) Validate() error {
	if h.SlotMinutes <= 0 {
		return ErrInvalidSlot
	}
	if h.DayEndMinutes <= h.DayStartMinutes {
		return ErrInvalidHours
	}
	return nil
}

// SlotCount is the number of grid rows. Rounds up so a trailing partial slot
// still gets a row.
func (h BusinessHours) SlotCount() int {
	span := h.DayEndMinutes - h.DayStartMinutes
	return (span + h.SlotMinutes - 1) / h.SlotMinutes
}

// SlotLabel formats the wall-clock start of slot i as "HH:MM".
func (h BusinessHours) SlotLabel(i int) string {
	m := h.DayStartMinutes + i*h.SlotMinutes
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseClock parses "HH:MM" into minutes from midnight. Used by the config
// layer so operators write business hours the way they read them.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("grid: invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("grid: invalid clock time %q", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("grid: invalid clock time %q", s)
	}
	return hour*60 + minute, nil
}
