package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PrepRoomService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-PrepRoomService/internal/usecase/check_availability"
)

const (
	msgValidationFailed = "некорректные параметры запроса"
	msgInvalidParams    = "некорректный формат параметров, время ожидается в RFC 3339"
	msgInvalidTimeRange = "конец периода должен быть позже начала"
	msgInvalidDuration  = "длительность должна быть от 120 до 480 минут"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/funeral-homes/{funeralHomeId}/availability
// Query params: from, to, duration (обязательно), capacity, urgent (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	funeralHomeID := mux.Vars(r)["funeralHomeId"]

	query := QueryFromValues(r.URL.Query())
	if fields, err := handlers.ValidateStruct(&query); err != nil {
		h.logger.Warn("GET /funeral-homes/{id}/availability - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, fields)
		return
	}

	useCaseReq, err := query.ToUseCaseRequest(funeralHomeID)
	if err != nil {
		h.logger.Warn("GET /funeral-homes/{id}/availability - Failed to parse params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, checkAvailability.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("GET /funeral-homes/{id}/availability - Failed to check availability: funeral_home_id=%s, error=%v",
				funeralHomeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /funeral-homes/{id}/availability - Found %d slots: funeral_home_id=%s", result.Total, funeralHomeID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(funeralHomeID, result))
}
