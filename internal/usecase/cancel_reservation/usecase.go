package cancel_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
)

// UseCase use case для отмены бронирования
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

// Execute отменяет бронирование в статусе confirmed и освобождает окно комнаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || strings.TrimSpace(req.ReservationID) == "" || strings.TrimSpace(req.CancelledBy) == "" {
		uc.logger.Warn("CancelReservation: reservationId and cancelledBy are required")
		return nil, fmt.Errorf("%w: reservationId and cancelledBy are required", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	uc.logger.Info("CancelReservation: reservation=%s by staff=%s", req.ReservationID, req.CancelledBy)

	var updated *domain.Reservation

	// 2. Загружаем, отменяем и сохраняем в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.repo.GetReservationByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, domain.ErrReservationNotFound) {
				uc.logger.Warn("CancelReservation: reservation id=%s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CancelReservation: failed to get reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		next, err := reservation.Cancel(req.CancellationReason, uc.timeProvider.Now())
		if err != nil {
			uc.logger.Warn("CancelReservation: reservation id=%s cannot be cancelled, status=%s", req.ReservationID, reservation.Status)
			return fmt.Errorf("%w: current status %s", ErrCannotCancel, reservation.Status)
		}

		saved, err := uc.repo.UpdateReservation(txCtx, &next)
		if err != nil {
			uc.logger.Error("CancelReservation: failed to update reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		updated = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordTransition(string(updated.Status))
	uc.logger.Info("CancelReservation: reservation id=%s cancelled", updated.ID)

	return &Response{
		Reservation: models.FromDomainReservation(updated),
		Message:     "reservation cancelled",
	}, nil
}
