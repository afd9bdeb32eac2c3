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

// GetRoomUtilization агрегирует бронирования комнат похоронного дома за период [start, end)
func (r *Repository) GetRoomUtilization(ctx context.Context, funeralHomeID string, start, end time.Time) ([]domain.RoomUtilization, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := utilizationQuery(funeralHomeID, start, end).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomUtilization - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapExecError("GetRoomUtilization", err)
	}
	defer rows.Close()

	result := make([]domain.RoomUtilization, 0)
	for rows.Next() {
		var util domain.RoomUtilization
		if err := rows.Scan(&util.PrepRoomID, &util.RoomNumber, &util.MaxCapacity, &util.ReservedCount); err != nil {
			return nil, fmt.Errorf("%w: GetRoomUtilization - scan row: %v", ErrScanRow, err)
		}

		util.AvailableSlots = util.MaxCapacity - util.ReservedCount
		if util.AvailableSlots < 0 {
			util.AvailableSlots = 0
		}
		result = append(result, util)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRoomUtilization - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func utilizationQuery(funeralHomeID string, start, end time.Time) squirrel.SelectBuilder {
	statuses := blockingStatuses()
	placeholders := squirrel.Placeholders(len(statuses))

	joinArgs := []interface{}{end, start}
	for _, status := range statuses {
		joinArgs = append(joinArgs, status)
	}

	return psqlbuilder.Select("r.id", "r.room_number", "r.capacity", "COUNT(res.id)").
		From(roomsTable+" r").
		LeftJoin(
			reservationsTable+" res ON res.prep_room_id = r.id AND res.reserved_from < ? AND res.reserved_to > ? AND res.status IN ("+placeholders+")",
			joinArgs...,
		).
		Where(squirrel.Eq{"r.funeral_home_id": funeralHomeID}).
		GroupBy("r.id", "r.room_number", "r.capacity").
		OrderBy("r.room_number ASC")
}
