package libcal

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("libcal client: internal error")

	// ErrUnavailable возвращается, когда LibCal отвечает не 2xx
	ErrUnavailable = errors.New("libcal client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от LibCal
	ErrInvalidResponse = errors.New("libcal client: invalid response")
)
