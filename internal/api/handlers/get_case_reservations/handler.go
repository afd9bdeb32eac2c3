package get_case_reservations

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PrepRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations"
)

const msgInvalidCaseID = "некорректный ID дела"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cases/{caseId}/reservations
// Возвращает все бронирования дела, включая отменённые и освобождённые
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caseID := strings.TrimSpace(mux.Vars(r)["caseId"])
	if caseID == "" {
		h.logger.Warn("GET /cases/{id}/reservations - Empty case ID")
		handlers.RespondBadRequest(w, msgInvalidCaseID)
		return
	}

	result, err := h.service.GetByCase(r.Context(), caseID)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidCaseID)
			return
		}
		h.logger.Error("GET /cases/{id}/reservations - Failed to get reservations: case_id=%s, error=%v", caseID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cases/{id}/reservations - Retrieved %d reservations: case_id=%s",
		len(result.Reservations), caseID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
