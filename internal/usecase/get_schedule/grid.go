package get_schedule

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// enrich дополняет бронирования данными комнат
func enrich(bookings []*domain.Booking, roomsByID map[string]*domain.Room) []EnrichedBooking {
	result := make([]EnrichedBooking, 0, len(bookings))
	for _, b := range bookings {
		eb := EnrichedBooking{
			Booking:  b,
			RoomName: unknownRoomName,
			Building: unknownBuildingName,
		}
		if room, ok := roomsByID[b.RoomID]; ok {
			eb.RoomName = room.Name
			eb.Building = room.Building
			eb.RoomCapacity = room.Capacity
		}
		result = append(result, eb)
	}
	return result
}

// roomNames уникальные имена комнат, отсортированные по возрастанию
func roomNames(bookings []EnrichedBooking, rooms []*domain.Room, allRooms bool) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	if allRooms {
		for _, room := range rooms {
			add(room.Name)
		}
	}
	for _, b := range bookings {
		add(b.RoomName)
	}

	sort.Strings(names)
	return names
}

// hourBounds границы сетки: не уже 08:00-20:00, начало вниз до часа, конец вверх до часа
func hourBounds(bookings []*domain.Booking) (startHour, endHour int) {
	earliest := domain.ScheduleDayStartHour * 60
	latest := domain.ScheduleDayEndHour * 60

	for _, b := range bookings {
		if m := b.Slot.Start.Minutes(); m < earliest {
			earliest = m
		}
		if m := b.Slot.End.Minutes(); m > latest {
			latest = m
		}
	}

	startHour = earliest / 60
	endHour = (latest + 59) / 60
	return startHour, endHour
}

// hourLabels заголовки "hh:mm AM" для часов [startHour, endHour]
func hourLabels(startHour, endHour int) []string {
	labels := make([]string, 0, endHour-startHour+1)
	for h := startHour; h <= endHour; h++ {
		period := "AM"
		if h%24 >= 12 {
			period = "PM"
		}
		hour12 := h % 12
		if hour12 == 0 {
			hour12 = 12
		}
		labels = append(labels, fmt.Sprintf("%02d:00 %s", hour12, period))
	}
	return labels
}
