package cancel_reservation

import "github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"

// Request модель запроса на отмену бронирования
type Request struct {
	ReservationID      string
	CancellationReason string // Опционально
	CancelledBy        string // ID сотрудника
}

// Response модель ответа с отменённым бронированием
type Response struct {
	Reservation *models.ReservationResponse
	Message     string
}
