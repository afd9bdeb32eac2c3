package check_out

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PrepRoomService/internal/api/handlers"
	checkOut "github.com/m04kA/SMC-PrepRoomService/internal/usecase/check_out"
)

const (
	msgNotFound          = "бронирование не найдено"
	msgInvalidTransition = "завершить можно только бронирование в работе"
	msgInvalidInput      = "некорректный ID бронирования"
)

type Handler struct {
	useCase CheckOutUseCase
	logger  Logger
}

func NewHandler(useCase CheckOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/check-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	result, err := h.useCase.Execute(r.Context(), &checkOut.Request{ReservationID: reservationID})
	if err != nil {
		switch {
		case errors.Is(err, checkOut.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/check-out - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkOut.ErrInvalidTransition):
			h.logger.Warn("POST /reservations/{id}/check-out - Invalid transition: reservation_id=%s, %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, checkOut.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/{id}/check-out - Failed to check out: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/check-out - Checked out: reservation_id=%s, actual_duration=%d",
		reservationID, result.ActualDurationMinutes)
	handlers.RespondJSON(w, http.StatusOK, CheckOutResponse{
		Reservation:    result.Reservation,
		ActualDuration: result.ActualDurationMinutes,
		Message:        result.Message,
	})
}
