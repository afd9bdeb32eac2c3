package conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
)

type failingRepo struct {
	Repository
	err error
}

func (r *failingRepo) GetPrepRoomByID(context.Context, string) (*domain.PrepRoom, error) {
	return nil, r.err
}

func setup(t *testing.T, policy domain.SchedulingPolicy, rooms ...domain.PrepRoom) (*Engine, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository(policy)
	for _, room := range rooms {
		repo.AddRoom(room)
	}
	return NewEngine(repo, policy, testfixtures.NewLogger()), repo
}

func candidate(roomID string, from time.Time, minutes int) Candidate {
	return Candidate{
		PrepRoomID:   roomID,
		ReservedFrom: from,
		ReservedTo:   from.Add(time.Duration(minutes) * time.Minute),
		Priority:     domain.PriorityNormal,
	}
}

func TestEngine_Evaluate(t *testing.T) {
	ctx := context.Background()
	room := testfixtures.NewRoom()
	engine, repo := setup(t, domain.DefaultSchedulingPolicy(), room)

	existing := testfixtures.NewReservation(room.ID, testfixtures.At(2, 0), 240)
	_, err := repo.CreateReservation(ctx, &existing)
	require.NoError(t, err)

	t.Run("free window", func(t *testing.T) {
		decision, err := engine.Evaluate(ctx, candidate(room.ID, testfixtures.At(6, 35), 120))
		require.NoError(t, err)
		assert.False(t, decision.HasConflict())
		assert.Equal(t, room.ID, decision.Room.ID)
	})

	t.Run("buffer violated", func(t *testing.T) {
		decision, err := engine.Evaluate(ctx, candidate(room.ID, testfixtures.At(6, 20), 120))
		require.NoError(t, err)
		require.True(t, decision.HasConflict())
		assert.Equal(t, domain.ConflictTypeBuffer, decision.Conflict.Type)
		assert.Equal(t, existing.ID, decision.Conflict.ReservationID)
	})

	t.Run("urgent does not relax rules", func(t *testing.T) {
		c := candidate(room.ID, testfixtures.At(3, 0), 120)
		c.Priority = domain.PriorityUrgent

		decision, err := engine.Evaluate(ctx, c)
		require.NoError(t, err)
		require.True(t, decision.HasConflict())
		assert.Equal(t, domain.ConflictTypeOverlap, decision.Conflict.Type)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := engine.Evaluate(ctx, candidate("missing", testfixtures.At(10, 0), 120))
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	})
}

func TestEngine_Evaluate_RoomNotBookable(t *testing.T) {
	room := testfixtures.NewRoom(testfixtures.WithRoomStatus(domain.RoomStatusMaintenance))
	engine, _ := setup(t, domain.DefaultSchedulingPolicy(), room)

	decision, err := engine.Evaluate(context.Background(), candidate(room.ID, testfixtures.At(1, 0), 120))
	require.NoError(t, err)
	require.True(t, decision.HasConflict())
	assert.Equal(t, domain.ConflictTypeCapacity, decision.Conflict.Type)
	assert.Contains(t, decision.Conflict.Message, "maintenance")
}

func TestEngine_Evaluate_SameCasePolicy(t *testing.T) {
	ctx := context.Background()
	roomA := testfixtures.NewRoom()
	roomB := testfixtures.NewRoom()

	for _, allow := range []bool{true, false} {
		policy := domain.DefaultSchedulingPolicy()
		policy.AllowSameCaseOverlap = allow
		engine, repo := setup(t, policy, roomA, roomB)

		held := testfixtures.NewReservation(roomA.ID, testfixtures.At(1, 0), 180, testfixtures.WithCase("case-42"))
		_, err := repo.CreateReservation(ctx, &held)
		require.NoError(t, err)

		c := candidate(roomB.ID, testfixtures.At(2, 0), 120)
		c.CaseID = "case-42"

		decision, err := engine.Evaluate(ctx, c)
		require.NoError(t, err)
		if allow {
			assert.False(t, decision.HasConflict())
			continue
		}
		require.True(t, decision.HasConflict())
		assert.Equal(t, domain.ConflictTypeOverlap, decision.Conflict.Type)
		assert.Equal(t, held.ID, decision.Conflict.ReservationID)
	}
}

func TestEngine_Evaluate_StorageFailure(t *testing.T) {
	engine := NewEngine(&failingRepo{err: domain.ErrPersistence}, domain.DefaultSchedulingPolicy(), testfixtures.NewLogger())

	_, err := engine.Evaluate(context.Background(), candidate("room", testfixtures.At(1, 0), 120))
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, errors.Is(err, domain.ErrRoomNotFound))
}

func TestEngine_SuggestAlternatives(t *testing.T) {
	ctx := context.Background()
	room := testfixtures.NewRoom()
	engine, repo := setup(t, domain.DefaultSchedulingPolicy(), room)

	existing := testfixtures.NewReservation(room.ID, testfixtures.At(2, 0), 240)
	_, err := repo.CreateReservation(ctx, &existing)
	require.NoError(t, err)

	t.Run("starts after the blocking reservation", func(t *testing.T) {
		slots, err := engine.SuggestAlternatives(ctx, &room, candidate(room.ID, testfixtures.At(3, 0), 120), testfixtures.ReferenceTime())
		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.True(t, slots[0].StartTime.Equal(testfixtures.At(6, 30)))
		assert.Equal(t, 120, slots[0].DurationMinutes)
	})

	t.Run("never suggests the past", func(t *testing.T) {
		now := testfixtures.At(8, 10)
		slots, err := engine.SuggestAlternatives(ctx, &room, candidate(room.ID, testfixtures.At(3, 0), 120), now)
		require.NoError(t, err)
		require.NotEmpty(t, slots)
		assert.False(t, slots[0].StartTime.Before(now))
	})
}
