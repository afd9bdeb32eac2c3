package check_availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
)

// UseCase use case для просмотра свободных окон комнат
type UseCase struct {
	repo         SlotRepository
	policy       domain.SchedulingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo SlotRepository, policy domain.SchedulingPolicy, timeProvider TimeProvider, logger Logger) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		repo:         repo,
		policy:       policy,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute возвращает первые BrowseLimit свободных окон похоронного дома за период
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CheckAvailability: funeralHome=%s, from=%s, to=%s, duration=%d, urgent=%t",
		req.FuneralHomeID, req.From.Format(domain.DateTimeFormat), req.To.Format(domain.DateTimeFormat), req.DurationMinutes, req.IsUrgent)

	// 2. Ищем свободные окна
	slots, err := uc.repo.FindAvailableSlots(ctx, domain.SlotQuery{
		FuneralHomeID:   req.FuneralHomeID,
		ReservedFrom:    req.From,
		ReservedTo:      req.To,
		DurationMinutes: req.DurationMinutes,
		Capacity:        req.Capacity,
		Limit:           uc.policy.BrowseLimit,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to find slots: %v", err)
		return nil, fmt.Errorf("%w: failed to find available slots: %v", ErrInternal, err)
	}

	resp := &Response{
		Slots:       models.FromDomainSlots(slots),
		UrgentSlots: make([]models.SlotResponse, 0),
		Total:       len(slots),
	}

	// 3. Для срочного запроса выделяем окна, начинающиеся в ближайшие UrgentWindow
	if req.IsUrgent {
		now := uc.timeProvider.Now()
		urgent := make([]domain.AvailableSlot, 0)
		for i := range slots {
			if slots[i].StartsWithin(now, uc.policy.UrgentWindow) {
				urgent = append(urgent, slots[i])
			}
		}
		resp.UrgentSlots = models.FromDomainSlots(urgent)
	}

	uc.logger.Info("CheckAvailability: found %d slots (%d urgent)", resp.Total, len(resp.UrgentSlots))
	return resp, nil
}

func validateRequest(req *Request) error {
	if req == nil || strings.TrimSpace(req.FuneralHomeID) == "" {
		return fmt.Errorf("%w: funeralHomeId is required", ErrInvalidInput)
	}
	if req.From.IsZero() || req.To.IsZero() || !req.To.After(req.From) {
		return ErrInvalidTimeRange
	}
	if !domain.IsValidDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: %d minutes", ErrInvalidDuration, req.DurationMinutes)
	}
	if req.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}
	return nil
}
