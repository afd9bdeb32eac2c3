package conflicts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

// Repository подмножество порта хранилища, нужное движку конфликтов
type Repository interface {
	GetPrepRoomByID(ctx context.Context, id string) (*domain.PrepRoom, error)
	GetReservationsByCase(ctx context.Context, caseID string) ([]*domain.Reservation, error)
	CheckConflicts(ctx context.Context, roomID string, start, end time.Time, priority domain.Priority) ([]domain.ConflictInfo, error)
	FindAvailableSlots(ctx context.Context, query domain.SlotQuery) ([]domain.AvailableSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
