package preproom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/pkg/dbmetrics"
)

type fakeTx struct {
	dbmetrics.TxExecutor
}

func TestConflictCandidatesQuery(t *testing.T) {
	repo := NewRepository(nil, domain.DefaultSchedulingPolicy())
	start := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	t.Run("outside transaction", func(t *testing.T) {
		query, args, err := repo.conflictCandidatesQuery(context.Background(), "room-1", start, end).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "FROM prep_room_reservations")
		assert.Contains(t, query, "prep_room_id = $1")
		assert.Contains(t, query, "status IN ($2,$3,$4)")
		assert.Contains(t, query, "ORDER BY reserved_from ASC, id ASC")
		assert.NotContains(t, query, "FOR UPDATE")

		require.Len(t, args, 6)
		assert.Equal(t, "room-1", args[0])
		assert.Equal(t, end.Add(30*time.Minute), args[4])
		assert.Equal(t, start.Add(-30*time.Minute), args[5])
	})

	t.Run("inside transaction locks rows", func(t *testing.T) {
		ctx := dbmetrics.WithTx(context.Background(), &fakeTx{})

		query, _, err := repo.conflictCandidatesQuery(ctx, "room-1", start, end).ToSql()
		require.NoError(t, err)
		assert.Contains(t, query, "FOR UPDATE")
	})
}

func TestUtilizationQuery(t *testing.T) {
	start := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	query, args, err := utilizationQuery("fh-main", start, end).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "LEFT JOIN prep_room_reservations res ON res.prep_room_id = r.id")
	assert.Contains(t, query, "res.status IN ($3,$4,$5)")
	assert.Contains(t, query, "r.funeral_home_id = $6")
	assert.Contains(t, query, "GROUP BY r.id, r.room_number, r.capacity")

	require.Len(t, args, 6)
	assert.Equal(t, end, args[0])
	assert.Equal(t, start, args[1])
	assert.Equal(t, "fh-main", args[5])
}

func TestMapExecError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "serialization failure", err: &pq.Error{Code: "40001"}, want: domain.ErrConcurrentUpdate},
		{name: "deadlock", err: &pq.Error{Code: "40P01"}, want: domain.ErrConcurrentUpdate},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: ErrDuplicate},
		{name: "other driver error", err: &pq.Error{Code: "42P01"}, want: ErrExecQuery},
		{name: "plain error", err: errors.New("connection reset"), want: ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapExecError("op", tt.err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrPersistence)
		})
	}
}
