package availability

import (
	"errors"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrInvalidTimeSlot возвращается, когда начало слота не раньше конца
	ErrInvalidTimeSlot = domain.ErrInvalidTimeSlot

	// ErrUnknownCapacityRange возвращается для неизвестного диапазона вместимости
	ErrUnknownCapacityRange = errors.New("availability: unknown capacity range")

	// ErrDateRequired возвращается, когда в критериях поиска не указана дата
	ErrDateRequired = errors.New("availability: search date is required")
)
