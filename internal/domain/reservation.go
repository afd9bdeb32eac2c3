package domain

import (
	"fmt"
	"math"
	"time"
)

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusConfirmed    ReservationStatus = "confirmed"
	StatusInProgress   ReservationStatus = "in_progress"
	StatusCompleted    ReservationStatus = "completed"
	StatusAutoReleased ReservationStatus = "auto_released"
	StatusCancelled    ReservationStatus = "cancelled"
)

// IsValid reports whether the status is one of the known reservation statuses
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusInProgress, StatusCompleted, StatusAutoReleased, StatusCancelled:
		return true
	}
	return false
}

// Priority of a reservation request
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityUrgent Priority = "urgent"
)

// IsValid reports whether the priority is known
func (p Priority) IsValid() bool {
	return p == PriorityNormal || p == PriorityUrgent
}

// Reservation represents a booking of a preparation room.
// Transitions never mutate the receiver: each returns the next value,
// which is then persisted by the caller.
type Reservation struct {
	ID              string
	PrepRoomID      string
	EmbalmerID      string
	CaseID          string
	FamilyID        string
	Priority        Priority
	ReservedFrom    time.Time
	ReservedTo      time.Time
	DurationMinutes int
	Notes           *string
	Status          ReservationStatus

	CheckedInAt           *time.Time
	CheckedOutAt          *time.Time
	ActualDurationMinutes *int

	// Override audit
	OverrideApprovedBy *string
	OverrideReason     *string

	CancellationReason *string
	CancelledAt        *time.Time
	ReleasedAt         *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
}

// NewReservation builds a confirmed reservation; ReservedTo is derived from the duration
func NewReservation(id, roomID, embalmerID, caseID, familyID string, priority Priority, from time.Time, durationMinutes int, notes *string, createdBy string, now time.Time) Reservation {
	return Reservation{
		ID:              id,
		PrepRoomID:      roomID,
		EmbalmerID:      embalmerID,
		CaseID:          caseID,
		FamilyID:        familyID,
		Priority:        priority,
		ReservedFrom:    from,
		ReservedTo:      from.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
		Notes:           notes,
		Status:          StatusConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
		CreatedBy:       createdBy,
	}
}

// IsTerminal returns true if no further transition is possible
func (r Reservation) IsTerminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusAutoReleased || r.Status == StatusCancelled
}

// IsReleased returns true if the reservation no longer holds the room
func (r Reservation) IsReleased() bool {
	return r.Status == StatusAutoReleased || r.Status == StatusCancelled
}

// BlocksCalendar returns true if the reservation occupies its scheduled window
func (r Reservation) BlocksCalendar() bool {
	return !r.IsReleased()
}

// IsOverridden returns true if the reservation was force-created by a manager
func (r Reservation) IsOverridden() bool {
	return r.OverrideApprovedBy != nil
}

// CheckIn moves a confirmed reservation to in_progress
func (r Reservation) CheckIn(embalmerID string, now time.Time) (Reservation, error) {
	if r.Status != StatusConfirmed {
		return r, fmt.Errorf("%w: check-in from status %s", ErrInvalidTransition, r.Status)
	}
	if r.EmbalmerID != embalmerID {
		return r, fmt.Errorf("%w: reservation %s is assigned to another embalmer", ErrEmbalmerMismatch, r.ID)
	}

	next := r
	checkedIn := now
	next.CheckedInAt = &checkedIn
	next.Status = StatusInProgress
	next.UpdatedAt = now
	return next, nil
}

// CheckOut completes an in_progress reservation and records the actual duration
func (r Reservation) CheckOut(now time.Time) (Reservation, error) {
	if r.Status != StatusInProgress {
		return r, fmt.Errorf("%w: check-out from status %s", ErrInvalidTransition, r.Status)
	}

	next := r
	checkedOut := now
	actual := 0
	if r.CheckedInAt != nil {
		actual = int(math.Round(now.Sub(*r.CheckedInAt).Minutes()))
	}
	if actual < 0 {
		actual = 0
	}
	next.CheckedOutAt = &checkedOut
	next.ActualDurationMinutes = &actual
	next.Status = StatusCompleted
	next.UpdatedAt = now
	return next, nil
}

// HasAutoReleaseTimeout reports whether an unclaimed confirmed reservation has
// been waiting for check-in for at least timeout past its start
func (r Reservation) HasAutoReleaseTimeout(now time.Time, timeout time.Duration) bool {
	if r.Status != StatusConfirmed || r.CheckedInAt != nil {
		return false
	}
	return now.Sub(r.ReservedFrom) >= timeout
}

// AutoRelease releases an unclaimed confirmed reservation
func (r Reservation) AutoRelease(now time.Time, timeout time.Duration) (Reservation, error) {
	if r.Status != StatusConfirmed {
		return r, fmt.Errorf("%w: auto-release from status %s", ErrInvalidTransition, r.Status)
	}
	if !r.HasAutoReleaseTimeout(now, timeout) {
		return r, ErrAutoReleaseNotDue
	}

	next := r
	released := now
	next.ReleasedAt = &released
	next.Status = StatusAutoReleased
	next.UpdatedAt = now
	return next, nil
}

// Cancel cancels a confirmed reservation
func (r Reservation) Cancel(reason string, now time.Time) (Reservation, error) {
	if r.Status != StatusConfirmed {
		return r, fmt.Errorf("%w: cancel from status %s", ErrInvalidTransition, r.Status)
	}

	next := r
	cancelledAt := now
	next.CancelledAt = &cancelledAt
	if reason != "" {
		next.CancellationReason = &reason
	}
	next.Status = StatusCancelled
	next.UpdatedAt = now
	return next, nil
}

// ApplyOverride records the manager approval on the reservation
func (r Reservation) ApplyOverride(approvedBy, reason string) Reservation {
	next := r
	next.OverrideApprovedBy = &approvedBy
	next.OverrideReason = &reason
	return next
}
