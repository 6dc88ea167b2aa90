package sync_availability

import "errors"

var (
	// ErrFetchFailed возвращается, когда LibCal не ответил хотя бы за один день окна
	ErrFetchFailed = errors.New("sync_availability: failed to fetch LibCal availability")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sync_availability: internal error")
)
