package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

const (
	FuneralHomeID = "fh-main"
	EmbalmerID    = "embalmer-1"
	StaffID       = "staff-1"
)

var (
	roomCounter        uint64
	reservationCounter uint64
)

// referenceTime is a Monday morning, far from DST switches.
var referenceTime = time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)

// ReferenceTime returns the baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// At returns ReferenceTime shifted by the given hours and minutes.
func At(hours, minutes int) time.Time {
	return referenceTime.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
}

// RoomOption configures a generated room.
type RoomOption func(*domain.PrepRoom)

// WithRoomID overrides the room identifier.
func WithRoomID(id string) RoomOption {
	return func(r *domain.PrepRoom) { r.ID = id }
}

// WithRoomNumber overrides the room number.
func WithRoomNumber(number string) RoomOption {
	return func(r *domain.PrepRoom) { r.RoomNumber = number }
}

// WithRoomStatus overrides the room status.
func WithRoomStatus(status domain.RoomStatus) RoomOption {
	return func(r *domain.PrepRoom) { r.Status = status }
}

// WithCapacity overrides the room capacity.
func WithCapacity(capacity int) RoomOption {
	return func(r *domain.PrepRoom) { r.Capacity = capacity }
}

// WithFuneralHome overrides the owning funeral home.
func WithFuneralHome(id string) RoomOption {
	return func(r *domain.PrepRoom) { r.FuneralHomeID = id }
}

// NewRoom returns an available single-capacity room of FuneralHomeID.
func NewRoom(opts ...RoomOption) domain.PrepRoom {
	idx := atomic.AddUint64(&roomCounter, 1)
	room := domain.PrepRoom{
		ID:            fmt.Sprintf("room-%03d", idx),
		FuneralHomeID: FuneralHomeID,
		RoomNumber:    fmt.Sprintf("%03d", 100+idx),
		Capacity:      1,
		Status:        domain.RoomStatusAvailable,
		CreatedAt:     referenceTime,
		UpdatedAt:     referenceTime,
		CreatedBy:     StaffID,
	}
	for _, opt := range opts {
		opt(&room)
	}
	return room
}

// ReservationOption configures a generated reservation.
type ReservationOption func(*domain.Reservation)

// WithReservationID overrides the reservation identifier.
func WithReservationID(id string) ReservationOption {
	return func(r *domain.Reservation) { r.ID = id }
}

// WithStatus overrides the reservation status.
func WithStatus(status domain.ReservationStatus) ReservationOption {
	return func(r *domain.Reservation) { r.Status = status }
}

// WithCase overrides the case identifier.
func WithCase(caseID string) ReservationOption {
	return func(r *domain.Reservation) { r.CaseID = caseID }
}

// WithEmbalmer overrides the assigned embalmer.
func WithEmbalmer(embalmerID string) ReservationOption {
	return func(r *domain.Reservation) { r.EmbalmerID = embalmerID }
}

// WithPriority overrides the priority.
func WithPriority(priority domain.Priority) ReservationOption {
	return func(r *domain.Reservation) { r.Priority = priority }
}

// NewReservation returns a confirmed reservation of roomID for [from, from+duration).
func NewReservation(roomID string, from time.Time, durationMinutes int, opts ...ReservationOption) domain.Reservation {
	idx := atomic.AddUint64(&reservationCounter, 1)
	reservation := domain.NewReservation(
		fmt.Sprintf("res-%03d", idx),
		roomID,
		EmbalmerID,
		fmt.Sprintf("case-%03d", idx),
		fmt.Sprintf("family-%03d", idx),
		domain.PriorityNormal,
		from,
		durationMinutes,
		nil,
		StaffID,
		referenceTime,
	)
	for _, opt := range opts {
		opt(&reservation)
	}
	return reservation
}
