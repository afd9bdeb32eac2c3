package run_auto_release

import (
	"net/http"

	"github.com/m04kA/SMC-PrepRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-PrepRoomService/internal/api/middleware"
)

const msgMissingStaffID = "не указан сотрудник"

type Handler struct {
	useCase AutoReleaseUseCase
	logger  Logger
}

func NewHandler(useCase AutoReleaseUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/auto-release
// Ручной запуск того же прохода, что выполняет фоновый воркер
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		// Частичный результат всё равно логируем: часть бронирований могла освободиться
		if result != nil {
			h.logger.Warn("POST /admin/auto-release - Partial sweep: released=%d, examined=%d", result.Released, result.Examined)
		}
		h.logger.Error("POST /admin/auto-release - Sweep failed: staff_id=%s, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/auto-release - Sweep finished: staff_id=%s, released=%d, examined=%d",
		staffID, result.Released, result.Examined)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
