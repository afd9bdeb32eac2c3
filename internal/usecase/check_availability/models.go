package check_availability

import (
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
)

// Request модель запроса свободных окон
type Request struct {
	FuneralHomeID   string
	From            time.Time
	To              time.Time
	DurationMinutes int
	Capacity        int  // Минимальная вместимость (0 = любая)
	IsUrgent        bool // Выделить окна, начинающиеся в ближайшее время
}

// Response модель ответа со свободными окнами
type Response struct {
	Slots       []models.SlotResponse
	UrgentSlots []models.SlotResponse // Заполнено только для срочного запроса
	Total       int
}
