package reserve_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PrepRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-PrepRoomService/internal/api/middleware"
	reserveRoom "github.com/m04kA/SMC-PrepRoomService/internal/usecase/reserve_room"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
	msgInvalidDateTime    = "некорректный формат времени начала, ожидается RFC 3339"
	msgMissingStaffID     = "не указан сотрудник"
	msgRoomNotFound       = "комната подготовки не найдена"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase ReserveRoomUseCase
	logger  Logger
}

func NewHandler(useCase ReserveRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req ReserveRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields, err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, fields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse reservedFrom: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveRoom.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%s", req.PrepRoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, reserveRoom.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to reserve room: room_id=%s, case_id=%s, error=%v",
				req.PrepRoomID, req.CaseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Конфликт не является ошибкой use case, но для клиента это 409
	if !result.Success {
		h.logger.Warn("POST /reservations - Conflict: room_id=%s, case_id=%s, type=%s",
			req.PrepRoomID, req.CaseID, result.Conflict.ConflictType)
		handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
			Success:          false,
			ConflictResponse: result.Conflict,
		})
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%s, room_id=%s, staff_id=%s",
		result.Reservation.ID, req.PrepRoomID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, ReservationCreatedResponse{
		Success:     true,
		Reservation: result.Reservation,
		Message:     result.Message,
	})
}
