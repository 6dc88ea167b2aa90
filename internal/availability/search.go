package availability

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Criteria критерии поиска комнат
// Start и End необязательны: проверка доступности выполняется только когда заданы оба
type Criteria struct {
	Date     types.Date
	Start    types.TimeOfDay
	End      types.TimeOfDay
	Building string
	Type     string
	Capacity string // "10-20", "20-40", "50+" или пусто
}

// HasTimeRange возвращает true, если заданы и начало, и конец
func (c Criteria) HasTimeRange() bool {
	return !c.Start.IsZero() && !c.End.IsZero()
}

// RoomResult комната с отметкой доступности
type RoomResult struct {
	Room                *domain.Room
	IsAvailable         bool
	Conflict            *domain.Booking
	AvailabilityChecked bool // false в режиме просмотра без времени
}

// CapacityRange закрытый диапазон вместимости, Max == 0 означает без верхней границы
type CapacityRange struct {
	Min int
	Max int
}

// Contains проверяет вместимость, обе границы включительно
func (r CapacityRange) Contains(capacity int) bool {
	if capacity < r.Min {
		return false
	}
	return r.Max == 0 || capacity <= r.Max
}

// Диапазоны пересекаются на 20: комната на 20 мест попадает в оба
var capacityRanges = map[string]CapacityRange{
	domain.CapacitySmall:  {Min: 10, Max: 20},
	domain.CapacityMedium: {Min: 20, Max: 40},
	domain.CapacityLarge:  {Min: 50},
}

// ParseCapacityRange возвращает диапазон по имени
func ParseCapacityRange(name string) (CapacityRange, error) {
	r, ok := capacityRanges[name]
	if !ok {
		return CapacityRange{}, fmt.Errorf("%w: %q", ErrUnknownCapacityRange, name)
	}
	return r, nil
}

// Search фильтрует каталог и отмечает доступность комнат
// Порядок результата совпадает с порядком rooms
func Search(criteria Criteria, rooms []*domain.Room, bookings []*domain.Booking) ([]RoomResult, error) {
	if criteria.Date.IsZero() {
		return nil, ErrDateRequired
	}

	var capacity *CapacityRange
	if criteria.Capacity != "" {
		r, err := ParseCapacityRange(criteria.Capacity)
		if err != nil {
			return nil, err
		}
		capacity = &r
	}

	var requested *domain.TimeSlot
	if criteria.HasTimeRange() {
		s, err := domain.NewTimeSlot(criteria.Start, criteria.End)
		if err != nil {
			return nil, err
		}
		requested = &s
	}

	var idx *Index
	if requested != nil {
		idx = NewIndex(bookings)
	}

	results := make([]RoomResult, 0, len(rooms))
	for _, room := range rooms {
		if !matchesStatic(room, criteria, capacity) {
			continue
		}

		result := RoomResult{Room: room, IsAvailable: true}
		if requested != nil {
			res := idx.Evaluate(room.ID, criteria.Date, *requested)
			result.IsAvailable = res.Available
			result.Conflict = res.Conflict
			result.AvailabilityChecked = true
		}
		results = append(results, result)
	}

	return results, nil
}

func matchesStatic(room *domain.Room, criteria Criteria, capacity *CapacityRange) bool {
	if room == nil {
		return false
	}
	if criteria.Building != "" && criteria.Building != room.Building {
		return false
	}
	if criteria.Type != "" && criteria.Type != room.Type {
		return false
	}
	if capacity != nil && !capacity.Contains(room.Capacity) {
		return false
	}
	return true
}
