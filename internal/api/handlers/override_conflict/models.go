package override_conflict

import (
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
	overrideConflict "github.com/m04kA/SMC-PrepRoomService/internal/usecase/override_conflict"
)

// OverrideRequest HTTP request model
// Наличие утверждения проверяет use case, чтобы ответить 403, а не 400
type OverrideRequest struct {
	PrepRoomID        string  `json:"prepRoomId" validate:"required"`
	EmbalmerID        string  `json:"embalmerId" validate:"required"`
	CaseID            string  `json:"caseId" validate:"required"`
	FamilyID          string  `json:"familyId" validate:"required"`
	Priority          string  `json:"priority,omitempty" validate:"omitempty,oneof=normal urgent"`
	ReservedFrom      string  `json:"reservedFrom" validate:"required"`
	DurationMinutes   int     `json:"durationMinutes"`
	Notes             *string `json:"notes,omitempty" validate:"omitempty,max=500"`
	ManagerApprovalID string  `json:"managerApprovalId"`
	OverrideReason    string  `json:"overrideReason" validate:"max=500"`
}

// OverrideResponse HTTP response model
type OverrideResponse struct {
	Success             bool                        `json:"success"`
	Reservation         *models.ReservationResponse `json:"reservation"`
	OverriddenConflicts []models.ConflictResponse   `json:"overriddenConflicts"`
	Message             string                      `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *OverrideRequest) ToUseCaseRequest(createdBy string) (*overrideConflict.Request, error) {
	reservedFrom, err := time.Parse(domain.DateTimeFormat, r.ReservedFrom)
	if err != nil {
		return nil, err
	}

	return &overrideConflict.Request{
		PrepRoomID:        r.PrepRoomID,
		EmbalmerID:        r.EmbalmerID,
		CaseID:            r.CaseID,
		FamilyID:          r.FamilyID,
		Priority:          r.Priority,
		ReservedFrom:      reservedFrom,
		DurationMinutes:   r.DurationMinutes,
		Notes:             r.Notes,
		CreatedBy:         createdBy,
		ManagerApprovalID: r.ManagerApprovalID,
		OverrideReason:    r.OverrideReason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *overrideConflict.Response) *OverrideResponse {
	overridden := resp.OverriddenConflicts
	if overridden == nil {
		overridden = []models.ConflictResponse{}
	}

	return &OverrideResponse{
		Success:             resp.Success,
		Reservation:         resp.Reservation,
		OverriddenConflicts: overridden,
		Message:             resp.Message,
	}
}
