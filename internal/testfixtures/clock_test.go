package testfixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_DefaultsToReferenceTime(t *testing.T) {
	clock := NewClock(time.Time{})
	assert.True(t, clock.Now().Equal(ReferenceTime()))
}

func TestClock_AdvanceAndSet(t *testing.T) {
	start := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)
	clock := NewClock(start)

	updated := clock.Advance(90 * time.Minute)
	assert.True(t, updated.Equal(start.Add(90*time.Minute)))
	assert.True(t, clock.Now().Equal(updated))

	clock.Set(start.Add(5 * time.Hour))
	assert.True(t, clock.Now().Equal(start.Add(5*time.Hour)))
}

func TestNewReservation_DerivesEndFromDuration(t *testing.T) {
	res := NewReservation("room-x", At(2, 0), 180, WithStatus("in_progress"))

	assert.Equal(t, "room-x", res.PrepRoomID)
	assert.True(t, res.ReservedTo.Equal(At(5, 0)))
	assert.Equal(t, "in_progress", string(res.Status))
}
