package override_conflict

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

// UseCase use case для принудительного бронирования с утверждением менеджера
type UseCase struct {
	repo         ReservationRepository
	engine       ConflictEngine
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
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

// Execute создает бронирование, игнорируя конфликты расписания
// Найденные конфликты возвращаются в ответе, бронирование хранит утвердившего менеджера и причину
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация (утверждение, причина, длительность)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("OverrideConflict: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("OverrideConflict: room=%s, case=%s, from=%s, duration=%d, approvedBy=%s",
		req.PrepRoomID, req.CaseID, req.ReservedFrom.Format(domain.DateTimeFormat), req.DurationMinutes, req.ManagerApprovalID)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	candidate := conflicts.Candidate{
		PrepRoomID:   req.PrepRoomID,
		CaseID:       req.CaseID,
		ReservedFrom: req.ReservedFrom,
		ReservedTo:   req.ReservedFrom.Add(time.Duration(req.DurationMinutes) * time.Minute),
		Priority:     priorityOf(req),
	}

	var (
		created    *domain.Reservation
		overridden []domain.ConflictInfo
	)

	// 3. В транзакции: фиксируем конфликты и создаём бронирование
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Комната должна существовать, конфликты собираем для аудита
		decision, err := uc.engine.Evaluate(txCtx, candidate)
		if err != nil {
			if errors.Is(err, domain.ErrRoomNotFound) {
				uc.logger.Warn("OverrideConflict: room id=%s not found", req.PrepRoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("OverrideConflict: failed to evaluate conflicts: %v", err)
			return fmt.Errorf("%w: failed to evaluate conflicts: %v", ErrInternal, err)
		}
		overridden = decision.Conflicts

		// 3.2. Создаём бронирование с отметкой override
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
		).ApplyOverride(req.ManagerApprovalID, req.OverrideReason)

		saved, err := uc.repo.CreateReservation(txCtx, &reservation)
		if err != nil {
			uc.logger.Error("OverrideConflict: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		created = saved
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("OverrideConflict: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	for _, info := range overridden {
		uc.logger.Warn("OverrideConflict: reservation id=%s overrides %s conflict with reservation=%s",
			created.ID, info.Type, info.ReservationID)
	}

	uc.metrics.RecordReservationCreated(string(created.Priority), true)
	uc.logger.Info("OverrideConflict: successfully created reservation id=%s approved by %s", created.ID, req.ManagerApprovalID)

	conflictsResp := make([]models.ConflictResponse, 0, len(overridden))
	for _, info := range overridden {
		conflictsResp = append(conflictsResp, *models.FromDomainConflict(info, nil))
	}

	return &Response{
		Success:             true,
		Reservation:         models.FromDomainReservation(created),
		OverriddenConflicts: conflictsResp,
		Message:             fmt.Sprintf("reservation created with override approved by %s", req.ManagerApprovalID),
	}, nil
}
