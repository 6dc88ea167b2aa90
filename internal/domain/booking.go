package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusBooked BookingStatus = "Booked"
)

// Booking sources
const (
	SourceLocal  = "BullSpace" // created through this service
	SourceLibCal = "LibCal"    // imported from the library calendar
)

// Booking represents a room reservation on a civil date
type Booking struct {
	ID           string
	RoomID       string
	Date         types.Date
	Slot         TimeSlot
	Organization string
	Status       BookingStatus
	Source       string
	ExternalID   *string // LibCal item and slot start for imported bookings

	CreatedAt time.Time
}

// IsActive returns true if the booking holds its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusBooked
}

// IsImported returns true if the booking came from an external feed
func (b *Booking) IsImported() bool {
	return b.Source != SourceLocal
}

// BookingsFilter filter for booking queries
type BookingsFilter struct {
	RoomID    *string     // nil - all rooms
	StartDate *types.Date // inclusive, nil - unbounded
	EndDate   *types.Date // inclusive, nil - unbounded
	Source    *string     // nil - all sources
}

// IsSingleDay returns true if the filter targets exactly one date
func (f BookingsFilter) IsSingleDay() bool {
	return f.StartDate != nil && f.EndDate != nil && *f.StartDate == *f.EndDate
}
