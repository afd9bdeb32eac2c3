package reserve_room

import (
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
	reserveRoom "github.com/m04kA/SMC-PrepRoomService/internal/usecase/reserve_room"
)

// ReserveRoomRequest HTTP request model
// durationMinutes не ограничивается тегами: длительность вне диапазона возвращается как конфликт
type ReserveRoomRequest struct {
	PrepRoomID      string  `json:"prepRoomId" validate:"required"`
	EmbalmerID      string  `json:"embalmerId" validate:"required"`
	CaseID          string  `json:"caseId" validate:"required"`
	FamilyID        string  `json:"familyId" validate:"required"`
	Priority        string  `json:"priority,omitempty" validate:"omitempty,oneof=normal urgent"`
	ReservedFrom    string  `json:"reservedFrom" validate:"required"` // RFC 3339
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ReservationCreatedResponse HTTP response model (201)
type ReservationCreatedResponse struct {
	Success     bool                        `json:"success"`
	Reservation *models.ReservationResponse `json:"reservation"`
	Message     string                      `json:"message"`
}

// ConflictResponse HTTP response model (409)
type ConflictResponse struct {
	Success bool `json:"success"`
	*models.ConflictResponse
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveRoomRequest) ToUseCaseRequest(createdBy string) (*reserveRoom.Request, error) {
	reservedFrom, err := time.Parse(domain.DateTimeFormat, r.ReservedFrom)
	if err != nil {
		return nil, err
	}

	return &reserveRoom.Request{
		PrepRoomID:      r.PrepRoomID,
		EmbalmerID:      r.EmbalmerID,
		CaseID:          r.CaseID,
		FamilyID:        r.FamilyID,
		Priority:        r.Priority,
		ReservedFrom:    reservedFrom,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		CreatedBy:       createdBy,
	}, nil
}
