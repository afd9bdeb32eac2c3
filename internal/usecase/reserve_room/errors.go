package reserve_room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната подготовки не найдена
	ErrRoomNotFound = errors.New("reserve_room: prep room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_room: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_room: internal error")
)
