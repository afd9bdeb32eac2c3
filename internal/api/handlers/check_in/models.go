package check_in

import "github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"

// CheckInRequest HTTP request model
type CheckInRequest struct {
	EmbalmerID string `json:"embalmerId" validate:"required"`
}

// CheckInResponse HTTP response model
type CheckInResponse struct {
	Reservation *models.ReservationResponse `json:"reservation"`
	Message     string                      `json:"message"`
}
