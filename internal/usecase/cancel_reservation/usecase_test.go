package cancel_reservation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
)

func TestExecute_Cancel(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository(domain.DefaultSchedulingPolicy())
	repo.AddRoom(testfixtures.NewRoom(testfixtures.WithRoomID("room-1")))

	res := testfixtures.NewReservation("room-1", testfixtures.At(4, 0), 180)
	completed := testfixtures.NewReservation("room-1", testfixtures.At(0, 0), 120, testfixtures.WithStatus(domain.StatusCompleted))
	for _, r := range []domain.Reservation{res, completed} {
		r := r
		_, err := repo.CreateReservation(ctx, &r)
		require.NoError(t, err)
	}

	recorder := testfixtures.NewRecorder()
	uc := NewUseCase(repo, memory.NewTxManager(repo), recorder, testfixtures.NewClock(testfixtures.At(1, 0)), testfixtures.NewLogger())

	resp, err := uc.Execute(ctx, &Request{ReservationID: res.ID, CancellationReason: "family request", CancelledBy: testfixtures.StaffID})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Reservation.Status)
	require.NotNil(t, resp.Reservation.CancellationReason)
	assert.Equal(t, "family request", *resp.Reservation.CancellationReason)
	assert.Equal(t, 1, recorder.Transitions["cancelled"])

	// Освобождённое окно больше не конфликтует
	conflicts, err := repo.CheckConflicts(ctx, "room-1", testfixtures.At(4, 0), testfixtures.At(7, 0), domain.PriorityNormal)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	_, err = uc.Execute(ctx, &Request{ReservationID: res.ID, CancelledBy: testfixtures.StaffID})
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = uc.Execute(ctx, &Request{ReservationID: completed.ID, CancelledBy: testfixtures.StaffID})
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = uc.Execute(ctx, &Request{ReservationID: "missing", CancelledBy: testfixtures.StaffID})
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = uc.Execute(ctx, &Request{ReservationID: res.ID})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{ReservationID: res.ID, CancelledBy: testfixtures.StaffID, CancellationReason: strings.Repeat("x", 501)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
