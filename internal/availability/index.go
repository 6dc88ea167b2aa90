package availability

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

type roomDay struct {
	roomID string
	date   types.Date
}

// Index группирует бронирования по (комната, дата)
// Строится один раз на вызов
type Index struct {
	byRoomDay map[roomDay][]*domain.Booking
}

// NewIndex строит индекс. Порядок бронирований внутри группы сохраняется
func NewIndex(bookings []*domain.Booking) *Index {
	idx := &Index{byRoomDay: make(map[roomDay][]*domain.Booking)}
	for _, b := range bookings {
		if b == nil {
			continue
		}
		key := roomDay{roomID: b.RoomID, date: b.Date}
		idx.byRoomDay[key] = append(idx.byRoomDay[key], b)
	}
	return idx
}

// For возвращает бронирования комнаты на дату
func (i *Index) For(roomID string, date types.Date) []*domain.Booking {
	return i.byRoomDay[roomDay{roomID: roomID, date: date}]
}

// Evaluate проверяет слот по индексу
func (i *Index) Evaluate(roomID string, date types.Date, requested domain.TimeSlot) Result {
	return Evaluate(roomID, date, requested, i.For(roomID, date))
}
