package reserve_room

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/conflicts"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
)

// UseCase use case для бронирования комнаты подготовки
type UseCase struct {
	repo         ReservationRepository
	engine       ConflictEngine
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// timeProvider может быть nil, тогда используется системное время
func NewUseCase(
	repo ReservationRepository,
	engine ConflictEngine,
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
		engine:       engine,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет бронирование
// Проверка конфликтов и создание выполняются в одной сериализуемой транзакции,
// поэтому из двух параллельных пересекающихся запросов успешен не более чем один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveRoom: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ReserveRoom: room=%s, case=%s, embalmer=%s, from=%s, duration=%d, priority=%s",
		req.PrepRoomID, req.CaseID, req.EmbalmerID, req.ReservedFrom.Format(domain.DateTimeFormat), req.DurationMinutes, priorityOf(req))

	// 2. Длительность вне диапазона возвращается как конфликт без обращения к хранилищу
	if !domain.IsValidDuration(req.DurationMinutes) {
		info := domain.DurationConflict(req.DurationMinutes)
		uc.logger.Warn("ReserveRoom: %s", info.Message)
		uc.metrics.RecordConflict(string(info.Type))
		return &Response{
			Success:  false,
			Conflict: models.FromDomainConflict(info, nil),
			Message:  info.Message,
		}, nil
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	candidate := conflicts.Candidate{
		PrepRoomID:   req.PrepRoomID,
		CaseID:       req.CaseID,
		ReservedFrom: req.ReservedFrom,
		ReservedTo:   req.ReservedFrom.Add(time.Duration(req.DurationMinutes) * time.Minute),
		Priority:     priorityOf(req),
	}

	var (
		created  *domain.Reservation
		decision *conflicts.Decision
	)

	// 4. Проверяем конфликты и создаём бронирование в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Проверяем кандидата
		d, err := uc.engine.Evaluate(txCtx, candidate)
		if err != nil {
			if errors.Is(err, domain.ErrRoomNotFound) {
				uc.logger.Warn("ReserveRoom: room id=%s not found", req.PrepRoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("ReserveRoom: failed to evaluate conflicts: %v", err)
			return fmt.Errorf("%w: failed to evaluate conflicts: %v", ErrInternal, err)
		}
		decision = d

		// 4.2. Конфликт: ничего не создаём
		if decision.HasConflict() {
			return nil
		}

		// 4.3. Создаём бронирование в статусе confirmed
		reservation := domain.NewReservation(
			uuid.NewString(),
			req.PrepRoomID,
			req.EmbalmerID,
			req.CaseID,
			req.FamilyID,
			candidate.Priority,
			req.ReservedFrom,
			req.DurationMinutes,
			req.Notes,
			req.CreatedBy,
			now,
		)

		// 4.4. Сохраняем бронирование
		saved, err := uc.repo.CreateReservation(txCtx, &reservation)
		if err != nil {
			uc.logger.Error("ReserveRoom: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		created = saved
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("ReserveRoom: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	// 5. Конфликт: подбираем альтернативы
	if decision.HasConflict() {
		return uc.conflictResponse(ctx, decision, candidate, now), nil
	}

	uc.metrics.RecordReservationCreated(string(created.Priority), false)
	uc.logger.Info("ReserveRoom: successfully created reservation id=%s", created.ID)

	message := fmt.Sprintf("prep room reserved from %s to %s",
		created.ReservedFrom.Format(domain.DateTimeFormat), created.ReservedTo.Format(domain.DateTimeFormat))

	return &Response{
		Success:     true,
		Reservation: models.FromDomainReservation(created),
		Message:     message,
	}, nil
}

// conflictResponse формирует ответ с конфликтом и альтернативами
// Ошибка подбора альтернатив не скрывает сам конфликт
func (uc *UseCase) conflictResponse(ctx context.Context, decision *conflicts.Decision, candidate conflicts.Candidate, now time.Time) *Response {
	info := *decision.Conflict
	uc.metrics.RecordConflict(string(info.Type))
	uc.logger.Warn("ReserveRoom: conflict type=%s with reservation=%s: %s", info.Type, info.ReservationID, info.Message)

	alternatives, err := uc.engine.SuggestAlternatives(ctx, decision.Room, candidate, now)
	if err != nil {
		uc.logger.Warn("ReserveRoom: failed to suggest alternatives: %v", err)
		alternatives = nil
	}

	return &Response{
		Success:  false,
		Conflict: models.FromDomainConflict(info, alternatives),
		Message:  info.Message,
	}
}
