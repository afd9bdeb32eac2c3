package domain

import (
	"context"
	"time"
)

// PrepRoomRepository is the persistence port of the reservation engine.
// Implementations return ErrRoomNotFound / ErrReservationNotFound for unknown
// ids and wrap every other storage failure with ErrPersistence.
type PrepRoomRepository interface {
	GetPrepRoomByID(ctx context.Context, id string) (*PrepRoom, error)
	GetPrepRoomsByFuneralHome(ctx context.Context, funeralHomeID string) ([]*PrepRoom, error)
	GetAvailablePrepRooms(ctx context.Context, funeralHomeID string) ([]*PrepRoom, error)

	CreateReservation(ctx context.Context, reservation *Reservation) (*Reservation, error)
	GetReservationByID(ctx context.Context, id string) (*Reservation, error)
	GetReservationsByCase(ctx context.Context, caseID string) ([]*Reservation, error)
	GetReservationsByRoomAndDateRange(ctx context.Context, roomID string, start, end time.Time) ([]*Reservation, error)
	FindReservationsByStatus(ctx context.Context, status ReservationStatus) ([]*Reservation, error)
	UpdateReservation(ctx context.Context, reservation *Reservation) (*Reservation, error)

	FindAvailableSlots(ctx context.Context, query SlotQuery) ([]AvailableSlot, error)
	CheckConflicts(ctx context.Context, roomID string, start, end time.Time, priority Priority) ([]ConflictInfo, error)
	GetRoomUtilization(ctx context.Context, funeralHomeID string, start, end time.Time) ([]RoomUtilization, error)
}
