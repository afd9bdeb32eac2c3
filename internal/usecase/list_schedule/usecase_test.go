package list_schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
)

func TestExecute_Schedule(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository(domain.DefaultSchedulingPolicy())
	roomA := testfixtures.NewRoom(testfixtures.WithRoomNumber("101"))
	roomB := testfixtures.NewRoom(testfixtures.WithRoomNumber("102"), testfixtures.WithCapacity(3))
	repo.AddRoom(roomA)
	repo.AddRoom(roomB)

	for _, res := range []domain.Reservation{
		testfixtures.NewReservation(roomA.ID, testfixtures.At(1, 0), 120),
		testfixtures.NewReservation(roomB.ID, testfixtures.At(1, 0), 120),
		testfixtures.NewReservation(roomB.ID, testfixtures.At(5, 0), 120, testfixtures.WithStatus(domain.StatusCancelled)),
		testfixtures.NewReservation(roomB.ID, testfixtures.At(30, 0), 120),
	} {
		res := res
		_, err := repo.CreateReservation(ctx, &res)
		require.NoError(t, err)
	}

	uc := NewUseCase(repo, testfixtures.NewLogger())

	resp, err := uc.Execute(ctx, &Request{
		FuneralHomeID: testfixtures.FuneralHomeID,
		Start:         testfixtures.At(0, 0),
		End:           testfixtures.At(24, 0),
	})
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, "101", resp.Rooms[0].RoomNumber)
	assert.Equal(t, 1, resp.Rooms[0].ReservedCount)
	assert.InDelta(t, 100.0, resp.Rooms[0].OccupancyRate, 0.001)

	assert.Equal(t, 1, resp.Rooms[1].ReservedCount)
	assert.Len(t, resp.Rooms[1].Reservations, 2)

	assert.Equal(t, 2, resp.TotalReserved)
	assert.Equal(t, 4, resp.TotalCapacity)
	assert.InDelta(t, 50.0, resp.UtilizationPercent, 0.001)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(memory.NewRepository(domain.DefaultSchedulingPolicy()), testfixtures.NewLogger())

	_, err := uc.Execute(context.Background(), &Request{Start: testfixtures.At(0, 0), End: testfixtures.At(1, 0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FuneralHomeID: "fh", Start: testfixtures.At(1, 0), End: testfixtures.At(1, 0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := uc.Execute(context.Background(), &Request{FuneralHomeID: "fh-empty", Start: testfixtures.At(0, 0), End: testfixtures.At(1, 0)})
	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
	assert.Zero(t, resp.UtilizationPercent)
}
