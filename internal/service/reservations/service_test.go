package reservations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
)

type brokenRepo struct{}

func (brokenRepo) GetReservationByID(context.Context, string) (*domain.Reservation, error) {
	return nil, domain.ErrPersistence
}

func (brokenRepo) GetReservationsByCase(context.Context, string) ([]*domain.Reservation, error) {
	return nil, domain.ErrPersistence
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository(domain.DefaultSchedulingPolicy())
	room := testfixtures.NewRoom()
	repo.AddRoom(room)

	res := testfixtures.NewReservation(room.ID, testfixtures.At(1, 0), 120)
	_, err := repo.CreateReservation(ctx, &res)
	require.NoError(t, err)

	svc := NewService(repo, testfixtures.NewLogger())

	got, err := svc.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)
	assert.Equal(t, "confirmed", got.Status)
	assert.Equal(t, testfixtures.At(1, 0).Format(domain.DateTimeFormat), got.ReservedFrom)
	assert.Nil(t, got.CheckedInAt)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.GetByID(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewService(brokenRepo{}, testfixtures.NewLogger()).GetByID(ctx, res.ID)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetByCase(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository(domain.DefaultSchedulingPolicy())
	room := testfixtures.NewRoom()
	repo.AddRoom(room)

	for _, res := range []domain.Reservation{
		testfixtures.NewReservation(room.ID, testfixtures.At(5, 0), 120, testfixtures.WithCase("case-7")),
		testfixtures.NewReservation(room.ID, testfixtures.At(1, 0), 120, testfixtures.WithCase("case-7"), testfixtures.WithStatus(domain.StatusCancelled)),
		testfixtures.NewReservation(room.ID, testfixtures.At(9, 0), 120),
	} {
		res := res
		_, err := repo.CreateReservation(ctx, &res)
		require.NoError(t, err)
	}

	svc := NewService(repo, testfixtures.NewLogger())

	list, err := svc.GetByCase(ctx, "case-7")
	require.NoError(t, err)
	require.Len(t, list.Reservations, 2)
	assert.Equal(t, "cancelled", list.Reservations[0].Status)
	assert.Equal(t, "confirmed", list.Reservations[1].Status)

	empty, err := svc.GetByCase(ctx, "case-unknown")
	require.NoError(t, err)
	assert.Empty(t, empty.Reservations)

	_, err = NewService(brokenRepo{}, testfixtures.NewLogger()).GetByCase(ctx, "case-7")
	assert.ErrorIs(t, err, ErrInternal)
}
