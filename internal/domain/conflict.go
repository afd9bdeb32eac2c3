package domain

import (
	"fmt"
	"time"
)

// ConflictType describes why a reservation request cannot be placed
type ConflictType string

const (
	// ConflictTypeOverlap indicates the requested window intersects an existing reservation
	ConflictTypeOverlap ConflictType = "overlap"
	// ConflictTypeCapacity indicates the room cannot take reservations in its current status
	ConflictTypeCapacity ConflictType = "capacity"
	// ConflictTypeBuffer indicates the mandatory gap to a neighbouring reservation is violated
	ConflictTypeBuffer ConflictType = "buffer"
)

// ConflictInfo details a conflict that callers can present to users
type ConflictInfo struct {
	Type          ConflictType
	ReservationID string
	Message       string
}

// CapacityConflict builds the conflict reported for a room that is not bookable
func CapacityConflict(room *PrepRoom) ConflictInfo {
	return ConflictInfo{
		Type:    ConflictTypeCapacity,
		Message: fmt.Sprintf("prep room %s is not available (status: %s)", room.BusinessKey(), room.Status),
	}
}

// DurationConflict builds the conflict-shaped result for an out-of-range duration
func DurationConflict(durationMinutes int) ConflictInfo {
	return ConflictInfo{
		Type: ConflictTypeBuffer,
		Message: fmt.Sprintf("duration %d minutes is outside the allowed range %d-%d minutes",
			durationMinutes, MinReservationMinutes, MaxReservationMinutes),
	}
}

// ClassifyConflict checks an existing reservation against a candidate window.
// Released reservations never collide. The second return value is false when
// the candidate keeps the required buffer.
func ClassifyConflict(existing Reservation, candidateStart, candidateEnd time.Time, buffer time.Duration) (ConflictInfo, bool) {
	if !existing.BlocksCalendar() {
		return ConflictInfo{}, false
	}
	if !HasTimeOverlap(existing.ReservedFrom, existing.ReservedTo, candidateStart, candidateEnd, buffer) {
		return ConflictInfo{}, false
	}

	if HasDirectOverlap(existing.ReservedFrom, existing.ReservedTo, candidateStart, candidateEnd) {
		return ConflictInfo{
			Type:          ConflictTypeOverlap,
			ReservationID: existing.ID,
			Message: fmt.Sprintf("requested time overlaps reservation %s (%s - %s)",
				existing.ID, existing.ReservedFrom.Format(DateTimeFormat), existing.ReservedTo.Format(DateTimeFormat)),
		}, true
	}

	return ConflictInfo{
		Type:          ConflictTypeBuffer,
		ReservationID: existing.ID,
		Message: fmt.Sprintf("requested time violates the %d minute buffer around reservation %s (%s - %s)",
			int(buffer.Minutes()), existing.ID, existing.ReservedFrom.Format(DateTimeFormat), existing.ReservedTo.Format(DateTimeFormat)),
	}, true
}

// DetectConflicts classifies every existing reservation against the candidate window.
// Order of the input is preserved so callers get a deterministic first conflict.
func DetectConflicts(existing []Reservation, candidateStart, candidateEnd time.Time, buffer time.Duration) []ConflictInfo {
	conflicts := make([]ConflictInfo, 0)
	for _, reservation := range existing {
		if info, ok := ClassifyConflict(reservation, candidateStart, candidateEnd, buffer); ok {
			conflicts = append(conflicts, info)
		}
	}
	return conflicts
}
