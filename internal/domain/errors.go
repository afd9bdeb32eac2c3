package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomNotFound возвращается, когда комната подготовки не найдена
	ErrRoomNotFound = errors.New("domain: prep room not found")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("domain: reservation not found")

	// ErrPersistence оборачивает любые ошибки хранилища
	ErrPersistence = errors.New("domain: persistence error")

	// ErrConcurrentUpdate возвращается, когда хранилище отклонило транзакцию из-за конкурентного изменения
	ErrConcurrentUpdate = fmt.Errorf("%w: concurrent update", ErrPersistence)

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrEmbalmerMismatch возвращается, когда check-in выполняет не назначенный сотрудник
	ErrEmbalmerMismatch = errors.New("domain: embalmer does not match reservation")

	// ErrAutoReleaseNotDue возвращается, когда время авто-освобождения ещё не наступило
	ErrAutoReleaseNotDue = errors.New("domain: auto-release timeout not reached")
)
