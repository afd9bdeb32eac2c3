package list_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PrepRoomService/internal/api/handlers"
	listSchedule "github.com/m04kA/SMC-PrepRoomService/internal/usecase/list_schedule"
)

const (
	msgValidationFailed = "некорректные параметры запроса"
	msgInvalidPeriod    = "некорректный период, время ожидается в RFC 3339 и конец позже начала"
)

type Handler struct {
	useCase ListScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ListScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/funeral-homes/{funeralHomeId}/schedule
// Query params: start, end (обязательно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	funeralHomeID := mux.Vars(r)["funeralHomeId"]

	query := ScheduleQuery{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}
	if fields, err := handlers.ValidateStruct(&query); err != nil {
		h.logger.Warn("GET /funeral-homes/{id}/schedule - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, fields)
		return
	}

	useCaseReq, err := query.ToUseCaseRequest(funeralHomeID)
	if err != nil {
		h.logger.Warn("GET /funeral-homes/{id}/schedule - Failed to parse period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, listSchedule.ErrInvalidInput) {
			h.logger.Warn("GET /funeral-homes/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /funeral-homes/{id}/schedule - Failed to list schedule: funeral_home_id=%s, error=%v",
			funeralHomeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /funeral-homes/{id}/schedule - Schedule retrieved: funeral_home_id=%s, rooms=%d",
		funeralHomeID, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(useCaseReq, result))
}
