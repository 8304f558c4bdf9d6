package list_trainings

import (
	"errors"
	"net/http"

	"github.com/gymsys/GMS-ScheduleService/internal/api/handlers"
	"github.com/gymsys/GMS-ScheduleService/internal/api/middleware"
	"github.com/gymsys/GMS-ScheduleService/internal/service/trainings"
)

const (
	msgUnauthorized  = "usuario no autenticado"
	msgInvalidFilter = "parámetros de filtro inválidos"
)

type Handler struct {
	service TrainingsService
	logger  Logger
}

func NewHandler(service TrainingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req, err := parseQuery(r.URL.Query(), actor)
	if err != nil {
		h.logger.Warn("GET /schedules - Invalid query parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, trainings.ErrInvalidInput):
			h.logger.Warn("GET /schedules - Invalid filter: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /schedules - Failed to list trainings: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules - Listed %d trainings: user_id=%d", len(result.Trainings), actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
