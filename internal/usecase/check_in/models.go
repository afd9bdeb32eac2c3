package check_in

import "github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"

// Request модель запроса на начало работы в комнате
type Request struct {
	ReservationID string
	EmbalmerID    string
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	Reservation *models.ReservationResponse
	Message     string
}
