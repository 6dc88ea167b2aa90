package detect_conflicts

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("detect_conflicts: invalid input data")

	// ErrRangeTooLong возвращается, когда диапазон дат длиннее допустимого
	ErrRangeTooLong = errors.New("detect_conflicts: date range is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("detect_conflicts: internal error")
)
