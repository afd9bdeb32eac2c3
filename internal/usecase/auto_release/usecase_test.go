package auto_release

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
)

type failingUpdateRepo struct {
	*memory.Repository
}

func (r *failingUpdateRepo) UpdateReservation(context.Context, *domain.Reservation) (*domain.Reservation, error) {
	return nil, domain.ErrPersistence
}

func seed(t *testing.T, repo *memory.Repository, reservations ...domain.Reservation) {
	t.Helper()
	for _, res := range reservations {
		res := res
		_, err := repo.CreateReservation(context.Background(), &res)
		require.NoError(t, err)
	}
}

func TestExecute_ReleasesOnlyOverdue(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository(domain.DefaultSchedulingPolicy())
	repo.AddRoom(testfixtures.NewRoom(testfixtures.WithRoomID("room-1")))

	overdue := testfixtures.NewReservation("room-1", testfixtures.At(0, 0), 120)
	recent := testfixtures.NewReservation("room-1", testfixtures.At(2, 16), 120)
	future := testfixtures.NewReservation("room-1", testfixtures.At(8, 0), 120)
	working := testfixtures.NewReservation("room-1", testfixtures.At(4, 0), 120, testfixtures.WithStatus(domain.StatusInProgress))
	seed(t, repo, overdue, recent, future, working)

	clock := testfixtures.NewClock(testfixtures.At(0, 31))
	recorder := testfixtures.NewRecorder()
	uc := NewUseCase(repo, memory.NewTxManager(repo), recorder, domain.DefaultSchedulingPolicy(), clock, testfixtures.NewLogger())

	resp, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Released)
	assert.Equal(t, 3, resp.Examined)
	assert.Equal(t, []string{overdue.ID}, resp.ReleasedIDs)
	assert.Equal(t, 1, recorder.AutoReleased)

	stored, err := repo.GetReservationByID(ctx, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAutoReleased, stored.Status)
	require.NotNil(t, stored.ReleasedAt)

	t.Run("second run is a no-op", func(t *testing.T) {
		again, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, again.Released)
		assert.Equal(t, 2, again.Examined)
	})

	t.Run("later run picks up the next overdue reservation", func(t *testing.T) {
		clock.Set(testfixtures.At(2, 46))
		later, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{recent.ID}, later.ReleasedIDs)
	})
}

func TestExecute_TimeoutBoundary(t *testing.T) {
	repo := memory.NewRepository(domain.DefaultSchedulingPolicy())
	repo.AddRoom(testfixtures.NewRoom(testfixtures.WithRoomID("room-1")))
	res := testfixtures.NewReservation("room-1", testfixtures.At(1, 0), 120)
	seed(t, repo, res)

	clock := testfixtures.NewClock(testfixtures.At(1, 15))
	uc := NewUseCase(repo, memory.NewTxManager(repo), testfixtures.NewRecorder(), domain.DefaultSchedulingPolicy(), clock, testfixtures.NewLogger())

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Released)

	clock.Set(testfixtures.At(1, 31))
	resp, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Released)
}

func TestExecute_ReportsFailures(t *testing.T) {
	repo := memory.NewRepository(domain.DefaultSchedulingPolicy())
	repo.AddRoom(testfixtures.NewRoom(testfixtures.WithRoomID("room-1")))
	seed(t, repo, testfixtures.NewReservation("room-1", testfixtures.At(0, 0), 120))

	clock := testfixtures.NewClock(testfixtures.At(3, 0))
	broken := &failingUpdateRepo{Repository: repo}
	uc := NewUseCase(broken, memory.NewTxManager(repo), testfixtures.NewRecorder(), domain.DefaultSchedulingPolicy(), clock, testfixtures.NewLogger())

	resp, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
	require.NotNil(t, resp)
	assert.Equal(t, 0, resp.Released)
	assert.Equal(t, 1, resp.Examined)
}
