package override_conflict

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната подготовки не найдена
	ErrRoomNotFound = errors.New("override_conflict: prep room not found")

	// ErrApprovalRequired возвращается без ID утверждающего менеджера или причины
	ErrApprovalRequired = errors.New("override_conflict: manager approval and reason are required")

	// ErrInvalidDuration возвращается при длительности вне диапазона 120-480 минут
	ErrInvalidDuration = errors.New("override_conflict: duration out of range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("override_conflict: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("override_conflict: internal error")
)
