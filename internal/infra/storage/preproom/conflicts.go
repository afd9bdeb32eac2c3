package preproom

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PrepRoomService/pkg/psqlbuilder"
)

// CheckConflicts возвращает конфликты кандидата [start, end) с бронированиями комнаты
//
// Выбираются только бронирования, занимающие окно, которые попадают в расширенный
// на буфер интервал. Классификация (overlap/buffer) выполняется доменной функцией.
// Внутри транзакции сначала блокируется строка комнаты, затем найденные бронирования.
// Приоритет правил не ослабляет
func (r *Repository) CheckConflicts(ctx context.Context, roomID string, start, end time.Time, _ domain.Priority) ([]domain.ConflictInfo, error) {
	if _, err := r.GetPrepRoomByID(ctx, roomID); err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.conflictCandidatesQuery(ctx, roomID, start, end).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CheckConflicts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapExecError("CheckConflicts", err)
	}
	defer rows.Close()

	found, err := scanReservations(rows, "CheckConflicts")
	if err != nil {
		return nil, err
	}

	existing := make([]domain.Reservation, 0, len(found))
	for _, reservation := range found {
		existing = append(existing, *reservation)
	}

	return domain.DetectConflicts(existing, start, end, r.policy.Buffer), nil
}

func (r *Repository) conflictCandidatesQuery(ctx context.Context, roomID string, start, end time.Time) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From(reservationsTable).
		Where(squirrel.Eq{
			"prep_room_id": roomID,
			"status":       blockingStatuses(),
		}).
		Where(squirrel.Lt{"reserved_from": end.Add(r.policy.Buffer)}).
		Where(squirrel.Gt{"reserved_to": start.Add(-r.policy.Buffer)}).
		OrderBy("reserved_from ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return selectBuilder
}
