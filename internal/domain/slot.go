package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// ErrInvalidTimeSlot is returned when a slot has no positive length
var ErrInvalidTimeSlot = errors.New("domain: invalid time slot")

// slotLabelSeparator separates start and end in "10:00 AM - 11:00 AM"
const slotLabelSeparator = " - "

// TimeSlot is a start/end pair of civil wall-clock times, start < end
type TimeSlot struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}

// NewTimeSlot validates and builds a slot
func NewTimeSlot(start, end types.TimeOfDay) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() {
		return TimeSlot{}, fmt.Errorf("%w: start and end are required", ErrInvalidTimeSlot)
	}
	if !start.IsBefore(end) {
		return TimeSlot{}, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeSlot, start, end)
	}
	return TimeSlot{Start: start, End: end}, nil
}

// ParseTimeSlot builds a slot from "HH:MM" start and end strings
func ParseTimeSlot(start, end string) (TimeSlot, error) {
	s, err := types.ParseTimeOfDay(start)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: start: %v", ErrInvalidTimeSlot, err)
	}
	e, err := types.ParseTimeOfDay(end)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: end: %v", ErrInvalidTimeSlot, err)
	}
	return NewTimeSlot(s, e)
}

// ParseSlotLabel parses "hh:mm AM - hh:mm PM"
func ParseSlotLabel(label string) (TimeSlot, error) {
	parts := strings.Split(label, slotLabelSeparator)
	if len(parts) != 2 {
		return TimeSlot{}, fmt.Errorf("%w: malformed label %q", ErrInvalidTimeSlot, label)
	}
	s, err := types.ParseClockLabel(parts[0])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	e, err := types.ParseClockLabel(parts[1])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	return NewTimeSlot(s, e)
}

// Overlaps reports whether two slots share any instant.
// Touching endpoints (a.End == b.Start) do not overlap, so back-to-back bookings are allowed.
func Overlaps(a, b TimeSlot) bool {
	return a.Start.IsBefore(b.End) && a.End.IsAfter(b.Start)
}

// Overlaps is the method form of Overlaps
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return Overlaps(s, other)
}

// Adjoins reports whether other starts exactly where s ends
func (s TimeSlot) Adjoins(other TimeSlot) bool {
	return s.End.Equal(other.Start)
}

// DurationMinutes returns the slot length in minutes
func (s TimeSlot) DurationMinutes() int {
	return s.End.Minutes() - s.Start.Minutes()
}

// Label formats the slot as "hh:mm AM - hh:mm PM"
func (s TimeSlot) Label() string {
	return s.Start.ClockLabel() + slotLabelSeparator + s.End.ClockLabel()
}

// String formats the slot as "HH:MM-HH:MM"
func (s TimeSlot) String() string {
	return s.Start.String() + "-" + s.End.String()
}
