package auto_release

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

// UseCase use case для авто-освобождения бронирований без check-in
type UseCase struct {
	repo         ReservationRepository
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeout      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo ReservationRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	policy domain.SchedulingPolicy,
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
		timeout:      policy.AutoReleaseTimeout,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute освобождает все бронирования confirmed, у которых истёк таймаут check-in
//
// Каждое бронирование обрабатывается в своей транзакции: статус перечитывается,
// поэтому параллельный check-in или повторный запуск не приводят к двойному освобождению.
// Ошибка одного бронирования не останавливает проход, но возвращается после него
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Получаем все бронирования в статусе confirmed
	candidates, err := uc.repo.FindReservationsByStatus(ctx, domain.StatusConfirmed)
	if err != nil {
		uc.logger.Error("AutoRelease: failed to find confirmed reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to find confirmed reservations: %v", ErrInternal, err)
	}

	resp := &Response{
		Examined:    len(candidates),
		ReleasedIDs: make([]string, 0),
	}

	var failures []error

	// 2. Освобождаем просроченные по одному
	for _, candidate := range candidates {
		if !candidate.HasAutoReleaseTimeout(now, uc.timeout) {
			continue
		}

		released, err := uc.releaseOne(ctx, candidate.ID, now)
		if err != nil {
			uc.logger.Error("AutoRelease: failed to release reservation id=%s: %v", candidate.ID, err)
			failures = append(failures, err)
			continue
		}
		if released {
			resp.ReleasedIDs = append(resp.ReleasedIDs, candidate.ID)
		}
	}

	resp.Released = len(resp.ReleasedIDs)
	resp.Message = fmt.Sprintf("released %d of %d confirmed reservations", resp.Released, resp.Examined)

	if resp.Released > 0 {
		uc.metrics.RecordAutoReleased(resp.Released)
	}
	uc.logger.Info("AutoRelease: %s", resp.Message)

	if len(failures) > 0 {
		return resp, fmt.Errorf("%w: %d reservations failed: %v", ErrInternal, len(failures), errors.Join(failures...))
	}

	return resp, nil
}

// releaseOne перечитывает бронирование и освобождает его, если оно всё ещё просрочено
// Возвращает false, если бронирование уже не подлежит освобождению
func (uc *UseCase) releaseOne(ctx context.Context, id string, now time.Time) (bool, error) {
	released := false

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.repo.GetReservationByID(txCtx, id)
		if err != nil {
			return err
		}

		next, err := reservation.AutoRelease(now, uc.timeout)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrAutoReleaseNotDue) {
				uc.logger.Info("AutoRelease: skip reservation id=%s: %v", id, err)
				return nil
			}
			return err
		}

		if _, err := uc.repo.UpdateReservation(txCtx, &next); err != nil {
			return err
		}

		released = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if released {
		uc.metrics.RecordTransition(string(domain.StatusAutoReleased))
		uc.logger.Warn("AutoRelease: reservation id=%s released, no check-in within %s", id, uc.timeout)
	}

	return released, nil
}
