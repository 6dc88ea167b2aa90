package search_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("search_rooms: invalid input data")

	// ErrInvalidTimeSlot возвращается, когда начало не раньше конца
	ErrInvalidTimeSlot = errors.New("search_rooms: invalid time slot")

	// ErrUnknownCapacityRange возвращается для неизвестного диапазона вместимости
	ErrUnknownCapacityRange = errors.New("search_rooms: unknown capacity range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_rooms: internal error")
)
