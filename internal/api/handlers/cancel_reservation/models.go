package cancel_reservation

import (
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
	cancelReservation "github.com/m04kA/SMC-PrepRoomService/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty" validate:"max=500"`
}

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	Reservation *models.ReservationResponse `json:"reservation"`
	Message     string                      `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelReservationRequest) ToUseCaseRequest(reservationID, cancelledBy string) *cancelReservation.Request {
	return &cancelReservation.Request{
		ReservationID:      reservationID,
		CancellationReason: r.CancellationReason,
		CancelledBy:        cancelledBy,
	}
}
