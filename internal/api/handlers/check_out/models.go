package check_out

import "github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"

// CheckOutResponse HTTP response model
type CheckOutResponse struct {
	Reservation    *models.ReservationResponse `json:"reservation"`
	ActualDuration int                         `json:"actualDuration"`
	Message        string                      `json:"message"`
}
