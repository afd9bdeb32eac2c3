package check_out

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
)

// UseCase use case для check-out
type UseCase struct {
	repo         ReservationRepository
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo ReservationRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		repo:         repo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute переводит бронирование in_progress → completed и фиксирует фактическую длительность
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || strings.TrimSpace(req.ReservationID) == "" {
		uc.logger.Warn("CheckOut: reservationId is required")
		return nil, fmt.Errorf("%w: reservationId is required", ErrInvalidInput)
	}

	uc.logger.Info("CheckOut: reservation=%s", req.ReservationID)

	var updated *domain.Reservation

	// 2. Загружаем, переводим и сохраняем в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.repo.GetReservationByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, domain.ErrReservationNotFound) {
				uc.logger.Warn("CheckOut: reservation id=%s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CheckOut: failed to get reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		next, err := reservation.CheckOut(uc.timeProvider.Now())
		if err != nil {
			uc.logger.Warn("CheckOut: reservation id=%s cannot be checked out: %v", req.ReservationID, err)
			return fmt.Errorf("%w: current status %s", ErrInvalidTransition, reservation.Status)
		}

		saved, err := uc.repo.UpdateReservation(txCtx, &next)
		if err != nil {
			uc.logger.Error("CheckOut: failed to update reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		updated = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	actual := 0
	if updated.ActualDurationMinutes != nil {
		actual = *updated.ActualDurationMinutes
	}

	uc.metrics.RecordTransition(string(updated.Status))
	uc.logger.Info("CheckOut: reservation id=%s completed, actual duration %d minutes (planned %d)",
		updated.ID, actual, updated.DurationMinutes)

	return &Response{
		Reservation:           models.FromDomainReservation(updated),
		ActualDurationMinutes: actual,
		Message:               fmt.Sprintf("check-out recorded, actual duration %d minutes", actual),
	}, nil
}
