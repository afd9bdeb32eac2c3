package get_case_reservations

import (
	"context"

	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByCase(ctx context.Context, caseID string) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
