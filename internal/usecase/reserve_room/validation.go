package reserve_room

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

// validateRequest проверяет обязательные поля запроса
// Длительность проверяется отдельно: её нарушение возвращается как конфликт, а не ошибка
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	required := map[string]string{
		"prepRoomId": req.PrepRoomID,
		"embalmerId": req.EmbalmerID,
		"caseId":     req.CaseID,
		"familyId":   req.FamilyID,
		"createdBy":  req.CreatedBy,
	}
	for _, field := range []string{"prepRoomId", "embalmerId", "caseId", "familyId", "createdBy"} {
		if strings.TrimSpace(required[field]) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
		}
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

	return nil
}

// priorityOf возвращает приоритет запроса (по умолчанию normal)
func priorityOf(req *Request) domain.Priority {
	if req.Priority == "" {
		return domain.PriorityNormal
	}
	return domain.Priority(req.Priority)
}
