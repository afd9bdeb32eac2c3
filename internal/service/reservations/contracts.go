package reservations

import (
	"context"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetReservationByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetReservationsByCase(ctx context.Context, caseID string) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
