package list_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

// ScheduleRepository интерфейс чтения расписания комнат
type ScheduleRepository interface {
	GetRoomUtilization(ctx context.Context, funeralHomeID string, start, end time.Time) ([]domain.RoomUtilization, error)
	GetReservationsByRoomAndDateRange(ctx context.Context, roomID string, start, end time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
