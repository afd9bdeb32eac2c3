package auto_release

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	FindReservationsByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error)
	GetReservationByID(ctx context.Context, id string) (*domain.Reservation, error)
	UpdateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс бизнес-метрик
type MetricsRecorder interface {
	RecordTransition(status string)
	RecordAutoReleased(count int)
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
