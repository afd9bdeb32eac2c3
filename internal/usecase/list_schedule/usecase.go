package list_schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
)

// UseCase use case для просмотра расписания комнат похоронного дома
type UseCase struct {
	repo   ScheduleRepository
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute возвращает загрузку и бронирования всех комнат за период [Start, End)
// UtilizationPercent = сумма занятых / сумма вместимостей * 100
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || strings.TrimSpace(req.FuneralHomeID) == "" {
		return nil, fmt.Errorf("%w: funeralHomeId is required", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() || !req.End.After(req.Start) {
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	uc.logger.Info("ListSchedule: funeralHome=%s, start=%s, end=%s",
		req.FuneralHomeID, req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat))

	// 2. Загрузка комнат
	utilization, err := uc.repo.GetRoomUtilization(ctx, req.FuneralHomeID, req.Start, req.End)
	if err != nil {
		uc.logger.Error("ListSchedule: failed to get utilization: %v", err)
		return nil, fmt.Errorf("%w: failed to get room utilization: %v", ErrInternal, err)
	}

	resp := &Response{Rooms: make([]RoomSchedule, 0, len(utilization))}

	// 3. Бронирования каждой комнаты
	for i := range utilization {
		util := utilization[i]

		reservations, err := uc.repo.GetReservationsByRoomAndDateRange(ctx, util.PrepRoomID, req.Start, req.End)
		if err != nil {
			uc.logger.Error("ListSchedule: failed to get reservations of room=%s: %v", util.PrepRoomID, err)
			return nil, fmt.Errorf("%w: failed to get room reservations: %v", ErrInternal, err)
		}

		resp.Rooms = append(resp.Rooms, RoomSchedule{
			PrepRoomID:     util.PrepRoomID,
			RoomNumber:     util.RoomNumber,
			MaxCapacity:    util.MaxCapacity,
			ReservedCount:  util.ReservedCount,
			AvailableSlots: util.AvailableSlots,
			OccupancyRate:  util.OccupancyRate(),
			Reservations:   models.FromDomainReservations(reservations),
		})
		resp.TotalReserved += util.ReservedCount
		resp.TotalCapacity += util.MaxCapacity
	}

	if resp.TotalCapacity > 0 {
		resp.UtilizationPercent = float64(resp.TotalReserved) / float64(resp.TotalCapacity) * 100
	}

	uc.logger.Info("ListSchedule: %d rooms, utilization %.1f%%", len(resp.Rooms), resp.UtilizationPercent)
	return resp, nil
}
