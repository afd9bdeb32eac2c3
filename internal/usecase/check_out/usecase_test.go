package check_out

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
)

func TestExecute_CheckOut(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository(domain.DefaultSchedulingPolicy())
	repo.AddRoom(testfixtures.NewRoom(testfixtures.WithRoomID("room-1")))

	res := testfixtures.NewReservation("room-1", testfixtures.At(2, 0), 180)
	inProgress, err := res.CheckIn(testfixtures.EmbalmerID, testfixtures.At(2, 10))
	require.NoError(t, err)
	_, err = repo.CreateReservation(ctx, &inProgress)
	require.NoError(t, err)

	confirmed := testfixtures.NewReservation("room-1", testfixtures.At(8, 0), 180)
	_, err = repo.CreateReservation(ctx, &confirmed)
	require.NoError(t, err)

	clock := testfixtures.NewClock(testfixtures.At(5, 0).Add(20 * time.Second))
	recorder := testfixtures.NewRecorder()
	uc := NewUseCase(repo, memory.NewTxManager(repo), recorder, clock, testfixtures.NewLogger())

	t.Run("completes and records actual duration", func(t *testing.T) {
		resp, err := uc.Execute(ctx, &Request{ReservationID: res.ID})
		require.NoError(t, err)

		assert.Equal(t, "completed", resp.Reservation.Status)
		assert.Equal(t, 170, resp.ActualDurationMinutes)
		require.NotNil(t, resp.Reservation.ActualDurationMinutes)
		assert.Equal(t, 170, *resp.Reservation.ActualDurationMinutes)
		assert.Equal(t, 1, recorder.Transitions["completed"])
	})

	t.Run("second check-out is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{ReservationID: res.ID})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("confirmed reservation cannot be checked out", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{ReservationID: confirmed.ID})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{ReservationID: "missing"})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
