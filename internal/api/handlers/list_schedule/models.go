package list_schedule

import (
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
	listSchedule "github.com/m04kA/SMC-PrepRoomService/internal/usecase/list_schedule"
)

// ScheduleQuery query параметры запроса
type ScheduleQuery struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	FuneralHomeID      string         `json:"funeralHomeId"`
	Start              string         `json:"start"`
	End                string         `json:"end"`
	Rooms              []RoomSchedule `json:"rooms"`
	TotalReserved      int            `json:"totalReserved"`
	TotalCapacity      int            `json:"totalCapacity"`
	UtilizationPercent float64        `json:"utilizationPercent"`
}

// RoomSchedule расписание одной комнаты
type RoomSchedule struct {
	PrepRoomID     string                       `json:"prepRoomId"`
	RoomNumber     string                       `json:"roomNumber"`
	MaxCapacity    int                          `json:"maxCapacity"`
	ReservedCount  int                          `json:"reservedCount"`
	AvailableSlots int                          `json:"availableSlots"`
	OccupancyRate  float64                      `json:"occupancyRate"`
	Reservations   []models.ReservationResponse `json:"reservations"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func (q ScheduleQuery) ToUseCaseRequest(funeralHomeID string) (*listSchedule.Request, error) {
	start, err := time.Parse(domain.DateTimeFormat, q.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateTimeFormat, q.End)
	if err != nil {
		return nil, err
	}

	return &listSchedule.Request{
		FuneralHomeID: funeralHomeID,
		Start:         start,
		End:           end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *listSchedule.Request, resp *listSchedule.Response) *ScheduleResponse {
	rooms := make([]RoomSchedule, len(resp.Rooms))
	for i, room := range resp.Rooms {
		rooms[i] = RoomSchedule{
			PrepRoomID:     room.PrepRoomID,
			RoomNumber:     room.RoomNumber,
			MaxCapacity:    room.MaxCapacity,
			ReservedCount:  room.ReservedCount,
			AvailableSlots: room.AvailableSlots,
			OccupancyRate:  room.OccupancyRate,
			Reservations:   room.Reservations,
		}
	}

	return &ScheduleResponse{
		FuneralHomeID:      req.FuneralHomeID,
		Start:              req.Start.Format(domain.DateTimeFormat),
		End:                req.End.Format(domain.DateTimeFormat),
		Rooms:              rooms,
		TotalReserved:      resp.TotalReserved,
		TotalCapacity:      resp.TotalCapacity,
		UtilizationPercent: resp.UtilizationPercent,
	}
}
