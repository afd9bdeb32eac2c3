package models

import (
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              string  `json:"id"`
	PrepRoomID      string  `json:"prepRoomId"`
	EmbalmerID      string  `json:"embalmerId"`
	CaseID          string  `json:"caseId"`
	FamilyID        string  `json:"familyId"`
	Priority        string  `json:"priority"`
	ReservedFrom    string  `json:"reservedFrom"` // RFC 3339
	ReservedTo      string  `json:"reservedTo"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
	Status          string  `json:"status"`

	CheckedInAt           *string `json:"checkedInAt,omitempty"`
	CheckedOutAt          *string `json:"checkedOutAt,omitempty"`
	ActualDurationMinutes *int    `json:"actualDuration,omitempty"`

	OverrideApprovedBy *string `json:"overrideApprovedBy,omitempty"`
	OverrideReason     *string `json:"overrideReason,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	ReleasedAt         *string `json:"releasedAt,omitempty"`

	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// SlotResponse свободное окно комнаты
type SlotResponse struct {
	PrepRoomID      string `json:"prepRoomId"`
	RoomNumber      string `json:"roomNumber"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ConflictResponse описание конфликта с предложенными альтернативами
type ConflictResponse struct {
	ConflictType          string         `json:"conflictType"`
	ReservationID         string         `json:"conflictingReservationId,omitempty"`
	Message               string         `json:"message"`
	SuggestedAlternatives []SlotResponse `json:"suggestedAlternatives"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:                    r.ID,
		PrepRoomID:            r.PrepRoomID,
		EmbalmerID:            r.EmbalmerID,
		CaseID:                r.CaseID,
		FamilyID:              r.FamilyID,
		Priority:              string(r.Priority),
		ReservedFrom:          r.ReservedFrom.Format(domain.DateTimeFormat),
		ReservedTo:            r.ReservedTo.Format(domain.DateTimeFormat),
		DurationMinutes:       r.DurationMinutes,
		Notes:                 r.Notes,
		Status:                string(r.Status),
		CheckedInAt:           formatTime(r.CheckedInAt),
		CheckedOutAt:          formatTime(r.CheckedOutAt),
		ActualDurationMinutes: r.ActualDurationMinutes,
		OverrideApprovedBy:    r.OverrideApprovedBy,
		OverrideReason:        r.OverrideReason,
		CancellationReason:    r.CancellationReason,
		CancelledAt:           formatTime(r.CancelledAt),
		ReleasedAt:            formatTime(r.ReleasedAt),
		CreatedBy:             r.CreatedBy,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

// FromDomainReservations конвертирует список бронирований
func FromDomainReservations(list []*domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, *FromDomainReservation(r))
	}
	return result
}

// FromDomainSlots конвертирует свободные окна
func FromDomainSlots(slots []domain.AvailableSlot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotResponse{
			PrepRoomID:      s.PrepRoomID,
			RoomNumber:      s.RoomNumber,
			StartTime:       s.StartTime.Format(domain.DateTimeFormat),
			EndTime:         s.EndTime.Format(domain.DateTimeFormat),
			DurationMinutes: s.DurationMinutes,
		})
	}
	return result
}

// FromDomainConflict конвертирует конфликт и альтернативы
func FromDomainConflict(info domain.ConflictInfo, alternatives []domain.AvailableSlot) *ConflictResponse {
	return &ConflictResponse{
		ConflictType:          string(info.Type),
		ReservationID:         info.ReservationID,
		Message:               info.Message,
		SuggestedAlternatives: FromDomainSlots(alternatives),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateTimeFormat)
	return &s
}
