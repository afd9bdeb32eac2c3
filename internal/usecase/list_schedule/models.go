package list_schedule

import (
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
)

// Request модель запроса расписания похоронного дома
type Request struct {
	FuneralHomeID string
	Start         time.Time
	End           time.Time
}

// RoomSchedule расписание и загрузка одной комнаты
type RoomSchedule struct {
	PrepRoomID     string
	RoomNumber     string
	MaxCapacity    int
	ReservedCount  int
	AvailableSlots int
	OccupancyRate  float64
	Reservations   []models.ReservationResponse
}

// Response модель ответа с расписанием
type Response struct {
	Rooms              []RoomSchedule
	TotalReserved      int
	TotalCapacity      int
	UtilizationPercent float64
}
