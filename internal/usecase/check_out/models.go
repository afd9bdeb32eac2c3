package check_out

import "github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"

// Request модель запроса на завершение работы в комнате
type Request struct {
	ReservationID string
}

// Response модель ответа с завершённым бронированием
type Response struct {
	Reservation           *models.ReservationResponse
	ActualDurationMinutes int
	Message               string
}
