package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInvalidTimeRange возвращается, когда конец периода не позже начала
	ErrInvalidTimeRange = errors.New("check_availability: invalid time range")

	// ErrInvalidDuration возвращается при длительности вне диапазона 120-480 минут
	ErrInvalidDuration = errors.New("check_availability: duration out of range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
