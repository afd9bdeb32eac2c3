package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

// SlotRepository интерфейс поиска свободных окон
type SlotRepository interface {
	FindAvailableSlots(ctx context.Context, query domain.SlotQuery) ([]domain.AvailableSlot, error)
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
