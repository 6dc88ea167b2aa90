package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidTimeSlot возвращается, когда начало слота не раньше конца
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrOutsideSemester возвращается для дат вне окна семестра
	ErrOutsideSemester = errors.New("create_booking: date is outside of the semester")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("create_booking: cannot make reservations in the past")

	// ErrStartInPast возвращается, когда слот на сегодня уже начался
	ErrStartInPast = errors.New("create_booking: slot has already started")

	// ErrSlotNotAvailable возвращается, когда выбранный слот пересекается с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: time slot conflicts with an existing booking")

	// ErrConcurrentRequest возвращается, когда комнату на эту дату прямо сейчас бронирует другой запрос
	ErrConcurrentRequest = errors.New("create_booking: another booking for this room and date is in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError отказ из-за пересечения с существующим бронированием
// errors.Is(err, ErrSlotNotAvailable) == true
type ConflictError struct {
	ConflictWith *domain.Booking // первое пересекающееся бронирование
	Overlapping  int             // сколько всего бронирований пересекается со слотом
	Suggestion   *domain.Room    // свободная комната на этот слот, nil если нет
}

func (e *ConflictError) Error() string {
	if e.ConflictWith == nil {
		return ErrSlotNotAvailable.Error()
	}
	return fmt.Sprintf("%s: booking %s (%s)", ErrSlotNotAvailable, e.ConflictWith.ID, e.ConflictWith.Slot)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
