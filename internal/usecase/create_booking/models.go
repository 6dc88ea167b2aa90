package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Policy правила бронирования из конфигурации
type Policy struct {
	SemesterStart types.Date
	SemesterEnd   types.Date
	DefaultSource string
	LockTTL       time.Duration
	Location      *time.Location // часовой пояс кампуса для определения "сегодня"
}

// Request модель запроса на создание бронирования
type Request struct {
	RoomID       string          // ID комнаты
	Date         types.Date      // Дата бронирования
	StartTime    types.TimeOfDay // Время начала ("10:00")
	EndTime      types.TimeOfDay // Время окончания ("11:00")
	Organization string          // Кто бронирует (название организации)
	Source       string          // Источник, пусто - источник по умолчанию
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string
	RoomID       string
	Date         types.Date
	Slot         domain.TimeSlot
	Organization string
	Status       string
	Source       string
	CreatedAt    time.Time
}
