package preproom

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PrepRoomService/pkg/psqlbuilder"
)

// FindAvailableSlots ищет свободные окна в комнатах похоронного дома
//
// Загружает комнаты и занимающие окно бронирования за период поиска (с запасом на буфер),
// затем перебирает окна с шагом политики
func (r *Repository) FindAvailableSlots(ctx context.Context, query domain.SlotQuery) ([]domain.AvailableSlot, error) {
	rooms, err := r.GetPrepRoomsByFuneralHome(ctx, query.FuneralHomeID)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return []domain.AvailableSlot{}, nil
	}

	roomIDs := make([]string, 0, len(rooms))
	candidates := make([]domain.PrepRoom, 0, len(rooms))
	for _, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
		candidates = append(candidates, *room)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	sqlQuery, args, err := psqlbuilder.Select(reservationColumns...).
		From(reservationsTable).
		Where(squirrel.Eq{
			"prep_room_id": roomIDs,
			"status":       blockingStatuses(),
		}).
		Where(squirrel.Lt{"reserved_from": query.ReservedTo.Add(r.policy.Buffer)}).
		Where(squirrel.Gt{"reserved_to": query.ReservedFrom.Add(-r.policy.Buffer)}).
		OrderBy("reserved_from ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindAvailableSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, mapExecError("FindAvailableSlots", err)
	}
	defer rows.Close()

	found, err := scanReservations(rows, "FindAvailableSlots")
	if err != nil {
		return nil, err
	}

	booked := make(map[string][]domain.Reservation, len(rooms))
	for _, reservation := range found {
		booked[reservation.PrepRoomID] = append(booked[reservation.PrepRoomID], *reservation)
	}

	return domain.FindFreeSlots(candidates, booked, query, r.policy), nil
}
