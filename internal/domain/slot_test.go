package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/testfixtures"
)

func TestFindFreeSlots(t *testing.T) {
	policy := domain.DefaultSchedulingPolicy()
	roomA := testfixtures.NewRoom(testfixtures.WithRoomNumber("101"))
	roomB := testfixtures.NewRoom(testfixtures.WithRoomNumber("102"))
	closed := testfixtures.NewRoom(testfixtures.WithRoomNumber("100"), testfixtures.WithRoomStatus(domain.RoomStatusClosed))

	// Комната A занята 08:00-12:00
	booked := map[string][]domain.Reservation{
		roomA.ID: {testfixtures.NewReservation(roomA.ID, testfixtures.At(0, 0), 240)},
	}

	query := domain.SlotQuery{
		FuneralHomeID:   testfixtures.FuneralHomeID,
		ReservedFrom:    testfixtures.At(0, 0),
		ReservedTo:      testfixtures.At(8, 0),
		DurationMinutes: 120,
	}

	t.Run("first slots go to the free room", func(t *testing.T) {
		query := query
		query.Limit = 3
		slots := domain.FindFreeSlots([]domain.PrepRoom{roomB, closed, roomA}, booked, query, policy)

		require.Len(t, slots, 3)
		for _, slot := range slots {
			assert.Equal(t, roomB.ID, slot.PrepRoomID)
			assert.Equal(t, 120, slot.DurationMinutes)
		}
		assert.True(t, slots[0].StartTime.Equal(testfixtures.At(0, 0)))
		assert.True(t, slots[1].StartTime.Equal(testfixtures.At(0, 30)))
	})

	t.Run("booked room frees up after the buffer", func(t *testing.T) {
		slots := domain.FindFreeSlots([]domain.PrepRoom{roomA}, booked, query, policy)

		require.NotEmpty(t, slots)
		assert.True(t, slots[0].StartTime.Equal(testfixtures.At(4, 30)))
		assert.True(t, slots[len(slots)-1].EndTime.Equal(testfixtures.At(8, 0)))
	})

	t.Run("capacity filter", func(t *testing.T) {
		query := query
		query.Capacity = 2
		slots := domain.FindFreeSlots([]domain.PrepRoom{roomA, roomB}, booked, query, policy)
		assert.Empty(t, slots)
	})

	t.Run("empty window", func(t *testing.T) {
		query := query
		query.ReservedTo = query.ReservedFrom
		assert.Empty(t, domain.FindFreeSlots([]domain.PrepRoom{roomB}, booked, query, policy))
	})
}

func TestBuildRoomUtilization(t *testing.T) {
	room := testfixtures.NewRoom(testfixtures.WithCapacity(2))
	reservations := []domain.Reservation{
		testfixtures.NewReservation(room.ID, testfixtures.At(0, 0), 120),
		testfixtures.NewReservation(room.ID, testfixtures.At(3, 0), 120, testfixtures.WithStatus(domain.StatusCompleted)),
		testfixtures.NewReservation(room.ID, testfixtures.At(6, 0), 120, testfixtures.WithStatus(domain.StatusCancelled)),
	}

	util := domain.BuildRoomUtilization(room, reservations)

	assert.Equal(t, 2, util.ReservedCount)
	assert.Equal(t, 0, util.AvailableSlots)
	assert.InDelta(t, 100.0, util.OccupancyRate(), 0.001)
}

func TestAvailableSlot_StartsWithin(t *testing.T) {
	slot := domain.AvailableSlot{StartTime: testfixtures.At(1, 0), EndTime: testfixtures.At(3, 0)}
	now := testfixtures.ReferenceTime()

	assert.True(t, slot.StartsWithin(now, 2*testfixtures.At(1, 0).Sub(now)))
	assert.True(t, slot.StartsWithin(now, testfixtures.At(1, 0).Sub(now)))
	assert.False(t, slot.StartsWithin(now, testfixtures.At(0, 59).Sub(now)))
}
