package check_in

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PrepRoomService/internal/api/handlers"
	checkIn "github.com/m04kA/SMC-PrepRoomService/internal/usecase/check_in"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
	msgNotFound           = "бронирование не найдено"
	msgInvalidTransition  = "начать работу можно только по подтверждённому бронированию"
	msgEmbalmerMismatch   = "бальзамировщик не назначен на это бронирование"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	var req CheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/check-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields, err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /reservations/{id}/check-in - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, fields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkIn.Request{
		ReservationID: reservationID,
		EmbalmerID:    req.EmbalmerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkIn.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/check-in - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkIn.ErrEmbalmerMismatch):
			h.logger.Warn("POST /reservations/{id}/check-in - Embalmer mismatch: reservation_id=%s, embalmer_id=%s",
				reservationID, req.EmbalmerID)
			handlers.RespondForbidden(w, msgEmbalmerMismatch)

		case errors.Is(err, checkIn.ErrInvalidTransition):
			h.logger.Warn("POST /reservations/{id}/check-in - Invalid transition: reservation_id=%s, %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, checkIn.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/{id}/check-in - Failed to check in: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/check-in - Checked in: reservation_id=%s, embalmer_id=%s", reservationID, req.EmbalmerID)
	handlers.RespondJSON(w, http.StatusOK, CheckInResponse{
		Reservation: result.Reservation,
		Message:     result.Message,
	})
}
