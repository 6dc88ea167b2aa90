package seed_catalog

import "errors"

var (
	// ErrInvalidInput возвращается, если запись каталога комнат некорректна
	ErrInvalidInput = errors.New("seed_catalog: invalid input")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("seed_catalog: internal error")
)
