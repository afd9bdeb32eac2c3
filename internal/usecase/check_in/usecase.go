package check_in

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
)

// UseCase use case для check-in бальзамировщика
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

// Execute переводит бронирование confirmed → in_progress
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || strings.TrimSpace(req.ReservationID) == "" || strings.TrimSpace(req.EmbalmerID) == "" {
		uc.logger.Warn("CheckIn: reservationId and embalmerId are required")
		return nil, fmt.Errorf("%w: reservationId and embalmerId are required", ErrInvalidInput)
	}

	uc.logger.Info("CheckIn: reservation=%s, embalmer=%s", req.ReservationID, req.EmbalmerID)

	var updated *domain.Reservation

	// 2. Загружаем, переводим и сохраняем в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.repo.GetReservationByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, domain.ErrReservationNotFound) {
				uc.logger.Warn("CheckIn: reservation id=%s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CheckIn: failed to get reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		next, err := reservation.CheckIn(req.EmbalmerID, uc.timeProvider.Now())
		if err != nil {
			if errors.Is(err, domain.ErrEmbalmerMismatch) {
				uc.logger.Warn("CheckIn: embalmer=%s is not assigned to reservation id=%s", req.EmbalmerID, req.ReservationID)
				return fmt.Errorf("%w: %v", ErrEmbalmerMismatch, err)
			}
			uc.logger.Warn("CheckIn: reservation id=%s cannot be checked in: %v", req.ReservationID, err)
			return fmt.Errorf("%w: current status %s", ErrInvalidTransition, reservation.Status)
		}

		saved, err := uc.repo.UpdateReservation(txCtx, &next)
		if err != nil {
			uc.logger.Error("CheckIn: failed to update reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		updated = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordTransition(string(updated.Status))
	uc.logger.Info("CheckIn: reservation id=%s is in progress", updated.ID)

	return &Response{
		Reservation: models.FromDomainReservation(updated),
		Message:     "check-in recorded",
	}, nil
}
