package check_in

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("check_in: reservation not found")

	// ErrInvalidTransition возвращается, когда бронирование не в статусе confirmed
	ErrInvalidTransition = errors.New("check_in: reservation is not confirmed")

	// ErrEmbalmerMismatch возвращается, когда отмечается не назначенный бальзамировщик
	ErrEmbalmerMismatch = errors.New("check_in: embalmer does not match reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_in: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_in: internal error")
)
