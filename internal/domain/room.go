package domain

import "time"

// Room is a bookable campus space. Reference data, never mutated by booking logic.
type Room struct {
	ID       string
	Name     string
	Building string
	Capacity int
	Type     string
	Features []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFeature returns true if the room lists the feature
func (r *Room) HasFeature(feature string) bool {
	for _, f := range r.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// RoomsByID indexes rooms by ID
func RoomsByID(rooms []*Room) map[string]*Room {
	index := make(map[string]*Room, len(rooms))
	for _, room := range rooms {
		index[room.ID] = room
	}
	return index
}
