package get_active_trainers

import (
	"net/http"

	"github.com/gymsys/GMS-ScheduleService/internal/api/handlers"
	"github.com/gymsys/GMS-ScheduleService/internal/api/middleware"
)

const msgUnauthorized = "usuario no autenticado"

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/entrenadores
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ActiveTrainers(r.Context())
	if err != nil {
		h.logger.Error("GET /schedules/entrenadores - Failed to get trainers: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules/entrenadores - %d trainers returned: user_id=%d, degraded=%v",
		len(result.Trainers), actor.UserID, result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, result)
}
