package preproom

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PrepRoomService/pkg/psqlbuilder"
)

// CreateReservation сохраняет новое бронирование
// Вызывается внутри сериализуемой транзакции вместе с CheckConflicts
func (r *Repository) CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(reservationsTable).
		Columns(
			"id",
			"prep_room_id",
			"embalmer_id",
			"case_id",
			"family_id",
			"priority",
			"reserved_from",
			"reserved_to",
			"duration_minutes",
			"notes",
			"status",
			"override_approved_by",
			"override_reason",
			"created_by",
			"created_at",
			"updated_at",
		).
		Values(
			reservation.ID,
			reservation.PrepRoomID,
			reservation.EmbalmerID,
			reservation.CaseID,
			reservation.FamilyID,
			string(reservation.Priority),
			reservation.ReservedFrom,
			reservation.ReservedTo,
			reservation.DurationMinutes,
			reservation.Notes,
			string(reservation.Status),
			reservation.OverrideApprovedBy,
			reservation.OverrideReason,
			reservation.CreatedBy,
			reservation.CreatedAt,
			reservation.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateReservation - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, mapExecError("CreateReservation", err)
	}

	return reservation, nil
}

// GetReservationByID получает бронирование по ID
// Внутри транзакции строка блокируется для последующего перехода статуса
func (r *Repository) GetReservationByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From(reservationsTable).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservationByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservationByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// GetReservationsByCase получает все бронирования дела
func (r *Repository) GetReservationsByCase(ctx context.Context, caseID string) ([]*domain.Reservation, error) {
	return r.listReservations(ctx, "GetReservationsByCase", squirrel.Eq{"case_id": caseID})
}

// GetReservationsByRoomAndDateRange получает бронирования комнаты, пересекающие период [start, end)
func (r *Repository) GetReservationsByRoomAndDateRange(ctx context.Context, roomID string, start, end time.Time) ([]*domain.Reservation, error) {
	return r.listReservations(ctx, "GetReservationsByRoomAndDateRange", squirrel.And{
		squirrel.Eq{"prep_room_id": roomID},
		squirrel.Lt{"reserved_from": end},
		squirrel.Gt{"reserved_to": start},
	})
}

// FindReservationsByStatus получает бронирования в указанном статусе
func (r *Repository) FindReservationsByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	return r.listReservations(ctx, "FindReservationsByStatus", squirrel.Eq{"status": string(status)})
}

// UpdateReservation сохраняет результат перехода статуса
func (r *Repository) UpdateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(reservationsTable).
		Set("status", string(reservation.Status)).
		Set("checked_in_at", reservation.CheckedInAt).
		Set("checked_out_at", reservation.CheckedOutAt).
		Set("actual_duration_minutes", reservation.ActualDurationMinutes).
		Set("override_approved_by", reservation.OverrideApprovedBy).
		Set("override_reason", reservation.OverrideReason).
		Set("cancellation_reason", reservation.CancellationReason).
		Set("cancelled_at", reservation.CancelledAt).
		Set("released_at", reservation.ReleasedAt).
		Set("notes", reservation.Notes).
		Set("updated_at", reservation.UpdatedAt).
		Where(squirrel.Eq{"id": reservation.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateReservation - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapExecError("UpdateReservation", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateReservation - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return nil, domain.ErrReservationNotFound
	}

	return reservation, nil
}

func (r *Repository) listReservations(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From(reservationsTable).
		Where(where).
		OrderBy("reserved_from ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapExecError(op, err)
	}
	defer rows.Close()

	return scanReservations(rows, op)
}

func scanReservations(rows *sql.Rows, op string) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return reservations, nil
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.PrepRoomID,
		&reservation.EmbalmerID,
		&reservation.CaseID,
		&reservation.FamilyID,
		&reservation.Priority,
		&reservation.ReservedFrom,
		&reservation.ReservedTo,
		&reservation.DurationMinutes,
		&reservation.Notes,
		&reservation.Status,
		&reservation.CheckedInAt,
		&reservation.CheckedOutAt,
		&reservation.ActualDurationMinutes,
		&reservation.OverrideApprovedBy,
		&reservation.OverrideReason,
		&reservation.CancellationReason,
		&reservation.CancelledAt,
		&reservation.ReleasedAt,
		&reservation.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time
	return &reservation, nil
}
