package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Schedule grid bounds. The grid always covers at least 08:00-20:00.
const (
	ScheduleDayStartHour = 8
	ScheduleDayEndHour   = 20
)

// Business validation constants
const (
	MaxOrganizationLength = 200
	MaxConflictRangeDays  = 31
)

// Capacity ranges accepted by room search
const (
	CapacitySmall  = "10-20"
	CapacityMedium = "20-40"
	CapacityLarge  = "50+"
)
