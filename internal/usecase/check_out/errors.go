package check_out

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("check_out: reservation not found")

	// ErrInvalidTransition возвращается, когда бронирование не в статусе in_progress
	ErrInvalidTransition = errors.New("check_out: reservation is not in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_out: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_out: internal error")
)
