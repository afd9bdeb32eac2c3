package override_conflict

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PrepRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-PrepRoomService/internal/api/middleware"
	overrideConflict "github.com/m04kA/SMC-PrepRoomService/internal/usecase/override_conflict"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
	msgInvalidDateTime    = "некорректный формат времени начала, ожидается RFC 3339"
	msgMissingStaffID     = "не указан сотрудник"
	msgRoomNotFound       = "комната подготовки не найдена"
	msgApprovalRequired   = "для override требуется утверждение менеджера и причина"
	msgInvalidDuration    = "длительность должна быть от 120 до 480 минут"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase OverrideConflictUseCase
	logger  Logger
}

func NewHandler(useCase OverrideConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/override
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req OverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/override - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields, err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /reservations/override - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, fields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /reservations/override - Failed to parse reservedFrom: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, overrideConflict.ErrApprovalRequired):
			h.logger.Warn("POST /reservations/override - Approval missing: room_id=%s, staff_id=%s", req.PrepRoomID, staffID)
			handlers.RespondForbidden(w, msgApprovalRequired)

		case errors.Is(err, overrideConflict.ErrRoomNotFound):
			h.logger.Warn("POST /reservations/override - Room not found: room_id=%s", req.PrepRoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, overrideConflict.ErrInvalidDuration):
			h.logger.Warn("POST /reservations/override - Invalid duration: %d", req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, overrideConflict.ErrInvalidInput):
			h.logger.Warn("POST /reservations/override - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/override - Failed to override: room_id=%s, case_id=%s, error=%v",
				req.PrepRoomID, req.CaseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/override - Reservation created with override: reservation_id=%s, approved_by=%s, overridden=%d",
		result.Reservation.ID, req.ManagerApprovalID, len(result.OverriddenConflicts))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
