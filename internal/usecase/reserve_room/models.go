package reserve_room

import (
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
)

// Request модель запроса на бронирование комнаты
type Request struct {
	PrepRoomID      string    // ID комнаты подготовки
	EmbalmerID      string    // ID бальзамировщика
	CaseID          string    // ID дела
	FamilyID        string    // ID семьи
	Priority        string    // normal | urgent (пусто = normal)
	ReservedFrom    time.Time // Начало бронирования
	DurationMinutes int       // Длительность, 120-480 минут
	Notes           *string   // Заметки (опционально)
	CreatedBy       string    // ID сотрудника, создающего бронирование
}

// Response результат бронирования: либо созданное бронирование, либо конфликт
type Response struct {
	Success     bool
	Reservation *models.ReservationResponse // Заполнено при Success
	Conflict    *models.ConflictResponse    // Заполнено при конфликте
	Message     string
}
