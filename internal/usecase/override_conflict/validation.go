package override_conflict

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ManagerApprovalID) == "" || strings.TrimSpace(req.OverrideReason) == "" {
		return ErrApprovalRequired
	}
	if len(req.OverrideReason) > domain.MaxOverrideReasonLength {
		return fmt.Errorf("%w: override reason exceeds %d characters", ErrInvalidInput, domain.MaxOverrideReasonLength)
	}

	if strings.TrimSpace(req.PrepRoomID) == "" {
		return fmt.Errorf("%w: prepRoomId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.EmbalmerID) == "" {
		return fmt.Errorf("%w: embalmerId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CaseID) == "" {
		return fmt.Errorf("%w: caseId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CreatedBy) == "" {
		return fmt.Errorf("%w: createdBy is required", ErrInvalidInput)
	}
	if req.ReservedFrom.IsZero() {
		return fmt.Errorf("%w: reservedFrom is required", ErrInvalidInput)
	}
	if req.Priority != "" && !domain.Priority(req.Priority).IsValid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, req.Priority)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	// Override снимает только конфликты расписания, длительность остаётся обязательной
	if !domain.IsValidDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: %d minutes, allowed %d-%d",
			ErrInvalidDuration, req.DurationMinutes, domain.MinReservationMinutes, domain.MaxReservationMinutes)
	}

	return nil
}

func priorityOf(req *Request) domain.Priority {
	if req.Priority == "" {
		return domain.PriorityNormal
	}
	return domain.Priority(req.Priority)
}
