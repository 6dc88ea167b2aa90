package availability

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Result результат проверки доступности
type Result struct {
	Available bool
	Conflict  *domain.Booking // первое пересекающееся бронирование, nil если слот свободен
}

// Evaluate решает, свободен ли слот комнаты на дату
// existing может содержать бронирования других комнат и дат, они игнорируются.
// При конфликте возвращается первое пересечение в порядке existing
func Evaluate(roomID string, date types.Date, requested domain.TimeSlot, existing []*domain.Booking) Result {
	for _, b := range existing {
		if matches(b, roomID, date) && domain.Overlaps(b.Slot, requested) {
			return Result{Available: false, Conflict: b}
		}
	}
	return Result{Available: true}
}

// EvaluateAll возвращает все пересекающиеся бронирования в порядке existing
func EvaluateAll(roomID string, date types.Date, requested domain.TimeSlot, existing []*domain.Booking) []*domain.Booking {
	var conflicts []*domain.Booking
	for _, b := range existing {
		if matches(b, roomID, date) && domain.Overlaps(b.Slot, requested) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

func matches(b *domain.Booking, roomID string, date types.Date) bool {
	return b != nil && b.RoomID == roomID && b.Date == date
}
