package preproom

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PrepRoomService/pkg/psqlbuilder"
)

// GetPrepRoomByID получает комнату по ID
// Внутри транзакции строка комнаты блокируется (FOR UPDATE), чтобы параллельные
// резервирования одной комнаты выполнялись по очереди
func (r *Repository) GetPrepRoomByID(ctx context.Context, id string) (*domain.PrepRoom, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From(roomsTable).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPrepRoomByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPrepRoomByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// GetPrepRoomsByFuneralHome получает все комнаты похоронного дома
func (r *Repository) GetPrepRoomsByFuneralHome(ctx context.Context, funeralHomeID string) ([]*domain.PrepRoom, error) {
	return r.listRooms(ctx, "GetPrepRoomsByFuneralHome", squirrel.Eq{"funeral_home_id": funeralHomeID})
}

// GetAvailablePrepRooms получает комнаты похоронного дома в статусе available
func (r *Repository) GetAvailablePrepRooms(ctx context.Context, funeralHomeID string) ([]*domain.PrepRoom, error) {
	return r.listRooms(ctx, "GetAvailablePrepRooms", squirrel.Eq{
		"funeral_home_id": funeralHomeID,
		"status":          string(domain.RoomStatusAvailable),
	})
}

// UpsertRoom создает или обновляет комнату (начальное заполнение из конфигурации)
func (r *Repository) UpsertRoom(ctx context.Context, room domain.PrepRoom) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(roomsTable).
		Columns("id", "funeral_home_id", "room_number", "capacity", "status", "created_by").
		Values(room.ID, room.FuneralHomeID, room.RoomNumber, room.Capacity, string(room.Status), room.CreatedBy).
		Suffix("ON CONFLICT (id) DO UPDATE SET room_number = EXCLUDED.room_number, capacity = EXCLUDED.capacity, status = EXCLUDED.status, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertRoom - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return mapExecError("UpsertRoom", err)
	}

	return nil
}

func (r *Repository) listRooms(ctx context.Context, op string, where squirrel.Eq) ([]*domain.PrepRoom, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From(roomsTable).
		Where(where).
		OrderBy("room_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapExecError(op, err)
	}
	defer rows.Close()

	rooms := make([]*domain.PrepRoom, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan room: %v", ErrScanRow, op, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return rooms, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.PrepRoom, error) {
	var room domain.PrepRoom
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.FuneralHomeID,
		&room.RoomNumber,
		&room.Capacity,
		&room.Status,
		&room.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time
	return &room, nil
}
