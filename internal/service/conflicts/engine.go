package conflicts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

// Engine проверяет кандидата на конфликты и подбирает альтернативы
type Engine struct {
	repo   Repository
	policy domain.SchedulingPolicy
	logger Logger
}

// NewEngine создает движок конфликтов
func NewEngine(repo Repository, policy domain.SchedulingPolicy, logger Logger) *Engine {
	return &Engine{
		repo:   repo,
		policy: policy,
		logger: logger,
	}
}

// Evaluate проверяет кандидата
//
// Порядок проверок:
// 1. Комната существует (domain.ErrRoomNotFound возвращается как есть)
// 2. Комната в статусе available, иначе конфликт capacity без дальнейших проверок
// 3. Конфликты с бронированиями комнаты (overlap/buffer), первым считается самый ранний
// 4. Если политика запрещает, пересечения с другими бронированиями того же дела
//
// Приоритет передаётся в хранилище, но правила не ослабляет
func (e *Engine) Evaluate(ctx context.Context, candidate Candidate) (*Decision, error) {
	room, err := e.repo.GetPrepRoomByID(ctx, candidate.PrepRoomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, err
		}
		e.logger.Error("EvaluateConflicts: failed to get room id=%s: %v", candidate.PrepRoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	decision := &Decision{Room: room}

	if !room.IsBookable() {
		info := domain.CapacityConflict(room)
		decision.Conflict = &info
		decision.Conflicts = []domain.ConflictInfo{info}
		e.logger.Warn("EvaluateConflicts: room %s is %s", room.BusinessKey(), room.Status)
		return decision, nil
	}

	if candidate.Priority == domain.PriorityUrgent {
		e.logger.Info("EvaluateConflicts: urgent request for room %s, standard rules apply", room.BusinessKey())
	}

	found, err := e.repo.CheckConflicts(ctx, room.ID, candidate.ReservedFrom, candidate.ReservedTo, candidate.Priority)
	if err != nil {
		e.logger.Error("EvaluateConflicts: failed to check conflicts for room id=%s: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
	}

	if !e.policy.AllowSameCaseOverlap && candidate.CaseID != "" {
		caseConflicts, err := e.sameCaseConflicts(ctx, candidate)
		if err != nil {
			return nil, err
		}
		found = append(found, caseConflicts...)
	}

	decision.Conflicts = found
	if len(found) > 0 {
		first := found[0]
		decision.Conflict = &first
	}

	return decision, nil
}

// sameCaseConflicts ищет бронирования того же дела в других комнатах, пересекающиеся с кандидатом
func (e *Engine) sameCaseConflicts(ctx context.Context, candidate Candidate) ([]domain.ConflictInfo, error) {
	reservations, err := e.repo.GetReservationsByCase(ctx, candidate.CaseID)
	if err != nil {
		e.logger.Error("EvaluateConflicts: failed to get reservations of case=%s: %v", candidate.CaseID, err)
		return nil, fmt.Errorf("%w: failed to get case reservations: %v", ErrInternal, err)
	}

	result := make([]domain.ConflictInfo, 0)
	for _, reservation := range reservations {
		if reservation.PrepRoomID == candidate.PrepRoomID || !reservation.BlocksCalendar() {
			continue
		}
		if !domain.HasDirectOverlap(reservation.ReservedFrom, reservation.ReservedTo, candidate.ReservedFrom, candidate.ReservedTo) {
			continue
		}
		result = append(result, domain.ConflictInfo{
			Type:          domain.ConflictTypeOverlap,
			ReservationID: reservation.ID,
			Message: fmt.Sprintf("case %s already holds room %s from %s to %s",
				candidate.CaseID, reservation.PrepRoomID,
				reservation.ReservedFrom.Format(domain.DateTimeFormat), reservation.ReservedTo.Format(domain.DateTimeFormat)),
		})
	}

	return result, nil
}

// SuggestAlternatives подбирает свободные окна той же длительности в комнатах похоронного дома
// Поиск начинается с max(candidate.ReservedFrom, now) и идёт на AlternativesHorizon вперёд
func (e *Engine) SuggestAlternatives(ctx context.Context, room *domain.PrepRoom, candidate Candidate, now time.Time) ([]domain.AvailableSlot, error) {
	from := candidate.ReservedFrom
	if now.After(from) {
		from = now
	}

	slots, err := e.repo.FindAvailableSlots(ctx, domain.SlotQuery{
		FuneralHomeID:   room.FuneralHomeID,
		ReservedFrom:    from,
		ReservedTo:      from.Add(e.policy.AlternativesHorizon),
		DurationMinutes: candidate.DurationMinutes(),
		Limit:           e.policy.AlternativesLimit,
	})
	if err != nil {
		e.logger.Error("SuggestAlternatives: failed to find slots for funeral home=%s: %v", room.FuneralHomeID, err)
		return nil, fmt.Errorf("%w: failed to find available slots: %v", ErrInternal, err)
	}

	return slots, nil
}
