package reserve_room

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/conflicts"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// ConflictEngine интерфейс движка конфликтов
type ConflictEngine interface {
	Evaluate(ctx context.Context, candidate conflicts.Candidate) (*conflicts.Decision, error)
	SuggestAlternatives(ctx context.Context, room *domain.PrepRoom, candidate conflicts.Candidate, now time.Time) ([]domain.AvailableSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс бизнес-метрик
type MetricsRecorder interface {
	RecordReservationCreated(priority string, override bool)
	RecordConflict(conflictType string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
