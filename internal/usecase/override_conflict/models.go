package override_conflict

import (
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
)

// Request модель запроса на принудительное бронирование
type Request struct {
	PrepRoomID        string
	EmbalmerID        string
	CaseID            string
	FamilyID          string
	Priority          string
	ReservedFrom      time.Time
	DurationMinutes   int
	Notes             *string
	CreatedBy         string
	ManagerApprovalID string // ID менеджера, утвердившего override
	OverrideReason    string // Причина override
}

// Response результат принудительного бронирования
type Response struct {
	Success             bool
	Reservation         *models.ReservationResponse
	OverriddenConflicts []models.ConflictResponse // Конфликты, которые были проигнорированы
	Message             string
}
