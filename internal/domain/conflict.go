package domain

// ConflictClassification tells whether both bookings came from the same system
type ConflictClassification string

const (
	SameSystem  ConflictClassification = "same-system"
	CrossSystem ConflictClassification = "cross-system"
)

// Label returns the human-readable conflict type shown in alerts
func (c ConflictClassification) Label() string {
	if c == CrossSystem {
		return "Cross-System Conflict"
	}
	return "Double Booking"
}

// ClassifyConflict compares source tags
func ClassifyConflict(a, b *Booking) ConflictClassification {
	if a.Source != b.Source {
		return CrossSystem
	}
	return SameSystem
}

// Conflict is a derived pair of overlapping bookings for the same room and date
type Conflict struct {
	RoomID         string
	Booking1       *Booking
	Booking2       *Booking
	Classification ConflictClassification
}
