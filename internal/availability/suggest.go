package availability

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// SuggestOptions ограничения при подборе альтернативной комнаты
type SuggestOptions struct {
	Building string // если задано, рассматриваются только комнаты этого здания
}

// Suggest возвращает первую по порядку каталога комнату, свободную в slot на date
// Комната excludeRoomID никогда не предлагается. nil означает, что альтернативы нет
func Suggest(
	slot domain.TimeSlot,
	date types.Date,
	excludeRoomID string,
	candidates []*domain.Room,
	bookings []*domain.Booking,
	opts SuggestOptions,
) *domain.Room {
	return NewIndex(bookings).Suggest(slot, date, excludeRoomID, candidates, opts)
}

// Suggest вариант Suggest для многократных вызовов по одному индексу
func (i *Index) Suggest(
	slot domain.TimeSlot,
	date types.Date,
	excludeRoomID string,
	candidates []*domain.Room,
	opts SuggestOptions,
) *domain.Room {
	for _, room := range candidates {
		if room == nil || room.ID == excludeRoomID {
			continue
		}
		if opts.Building != "" && room.Building != opts.Building {
			continue
		}
		if i.Evaluate(room.ID, date, slot).Available {
			return room
		}
	}
	return nil
}

// SuggestPreferBuilding сначала ищет в здании building, затем во всем каталоге
func (i *Index) SuggestPreferBuilding(
	slot domain.TimeSlot,
	date types.Date,
	excludeRoomID string,
	building string,
	candidates []*domain.Room,
) *domain.Room {
	if building != "" {
		if room := i.Suggest(slot, date, excludeRoomID, candidates, SuggestOptions{Building: building}); room != nil {
			return room
		}
	}
	return i.Suggest(slot, date, excludeRoomID, candidates, SuggestOptions{})
}
