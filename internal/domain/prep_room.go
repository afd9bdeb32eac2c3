package domain

import (
	"fmt"
	"time"
)

// RoomStatus represents the operational status of a preparation room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusClosed      RoomStatus = "closed"
)

// IsValid reports whether the status is one of the known room statuses
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance, RoomStatusClosed:
		return true
	}
	return false
}

// PrepRoom represents a preparation room of a funeral home.
// Rooms are created by facility setup; the scheduler only reads them.
type PrepRoom struct {
	ID            string
	FuneralHomeID string
	RoomNumber    string
	Capacity      int // Informational: scheduling treats every room as single-occupancy
	Status        RoomStatus

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
}

// BusinessKey returns the stable human-traceable key funeralHomeId:roomNumber
func (r *PrepRoom) BusinessKey() string {
	return fmt.Sprintf("%s:%s", r.FuneralHomeID, r.RoomNumber)
}

// IsBookable returns true if new reservations may be placed in the room
func (r *PrepRoom) IsBookable() bool {
	return r.Status == RoomStatusAvailable
}
