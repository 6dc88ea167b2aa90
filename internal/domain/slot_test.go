package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

func slot(t *testing.T, start, end string) TimeSlot {
	t.Helper()
	s, err := ParseTimeSlot(start, end)
	require.NoError(t, err)
	return s
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]string
		want bool
	}{
		{name: "back to back", a: [2]string{"09:00", "10:00"}, b: [2]string{"10:00", "11:00"}, want: false},
		{name: "partial", a: [2]string{"09:00", "10:30"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "contained", a: [2]string{"09:00", "12:00"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "identical", a: [2]string{"10:00", "11:00"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "disjoint", a: [2]string{"08:00", "09:00"}, b: [2]string{"13:00", "14:00"}, want: false},
		{name: "one minute", a: [2]string{"09:00", "10:01"}, b: [2]string{"10:00", "11:00"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := slot(t, tt.a[0], tt.a[1])
			b := slot(t, tt.b[0], tt.b[1])
			assert.Equal(t, tt.want, Overlaps(a, b))
			assert.Equal(t, tt.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestOverlaps_SymmetricExhaustive(t *testing.T) {
	var slots []TimeSlot
	for start := 0; start < 6*60; start += 30 {
		for length := 15; length <= 120; length += 45 {
			s, _ := types.TimeOfDayFromMinutes(start)
			e, _ := types.TimeOfDayFromMinutes(start + length)
			ts, err := NewTimeSlot(s, e)
			require.NoError(t, err)
			slots = append(slots, ts)
		}
	}

	for _, a := range slots {
		for _, b := range slots {
			assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "%s vs %s", a, b)
		}
	}
}

func TestNewTimeSlot_Invalid(t *testing.T) {
	_, err := ParseTimeSlot("10:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = ParseTimeSlot("11:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = ParseTimeSlot("1000", "11:00")
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = NewTimeSlot(types.TimeOfDay{}, types.MustTimeOfDay(10, 0))
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestTimeSlot_Label(t *testing.T) {
	s := slot(t, "09:30", "13:00")
	assert.Equal(t, "09:30 AM - 01:00 PM", s.Label())
	assert.Equal(t, 210, s.DurationMinutes())

	parsed, err := ParseSlotLabel(s.Label())
	require.NoError(t, err)
	assert.Equal(t, s, parsed)

	_, err = ParseSlotLabel("09:30 AM to 01:00 PM")
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestTimeSlot_Adjoins(t *testing.T) {
	assert.True(t, slot(t, "09:00", "09:30").Adjoins(slot(t, "09:30", "10:00")))
	assert.False(t, slot(t, "09:00", "09:30").Adjoins(slot(t, "09:45", "10:00")))
}

func TestClassifyConflict(t *testing.T) {
	local := &Booking{Source: "local"}
	scraped := &Booking{Source: "scraped"}
	other := &Booking{Source: "local"}

	assert.Equal(t, CrossSystem, ClassifyConflict(local, scraped))
	assert.Equal(t, SameSystem, ClassifyConflict(local, other))
	assert.Equal(t, "Cross-System Conflict", CrossSystem.Label())
	assert.Equal(t, "Double Booking", SameSystem.Label())
}
