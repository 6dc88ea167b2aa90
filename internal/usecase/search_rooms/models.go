package search_rooms

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса поиска комнат
// Без StartTime и EndTime поиск работает в режиме просмотра каталога
type Request struct {
	Date      types.Date
	StartTime types.TimeOfDay
	EndTime   types.TimeOfDay
	Building  string // пусто - любое здание
	Type      string // пусто - любой тип
	Capacity  string // "10-20", "20-40", "50+" или пусто
}

// Response модель ответа поиска
type Response struct {
	Date                types.Date
	AvailabilityChecked bool
	Rooms               []RoomAvailability
}

// RoomAvailability комната с результатом проверки
type RoomAvailability struct {
	Room        *domain.Room
	IsAvailable bool
	Conflict    *domain.Booking // пересекающееся бронирование, если комната занята
}

// AvailableCount количество свободных комнат в ответе
func (r *Response) AvailableCount() int {
	count := 0
	for _, room := range r.Rooms {
		if room.IsAvailable {
			count++
		}
	}
	return count
}
