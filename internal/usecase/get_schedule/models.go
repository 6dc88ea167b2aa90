package get_schedule

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

const (
	unknownRoomName     = "Unknown Room"
	unknownBuildingName = "Unknown Building"
)

// Request модель запроса сетки расписания
type Request struct {
	Date     types.Date
	AllRooms bool // строки для всего каталога, а не только для комнат с бронированиями
}

// Response сетка расписания на день
type Response struct {
	Date      types.Date
	Rooms     []string          // имена комнат, отсортированные по имени
	TimeSlots []string          // часовые заголовки "hh:mm AM" включительно
	StartHour int               // час первого заголовка
	EndHour   int               // час последнего заголовка, может быть 24
	Bookings  []EnrichedBooking // бронирования дня в порядке хранилища
}

// EnrichedBooking бронирование с данными комнаты
type EnrichedBooking struct {
	Booking      *domain.Booking
	RoomName     string
	Building     string
	RoomCapacity int
}
