package get_training

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gymsys/GMS-ScheduleService/internal/api/handlers"
	"github.com/gymsys/GMS-ScheduleService/internal/api/middleware"
	"github.com/gymsys/GMS-ScheduleService/internal/service/trainings"
)

const (
	msgUnauthorized     = "usuario no autenticado"
	msgInvalidID        = "identificador de entrenamiento inválido"
	msgTrainingNotFound = "entrenamiento no encontrado"
	msgAccessDenied     = "no tiene permiso para ver este entrenamiento"
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

// Handle GET /api/v1/schedules/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("GET /schedules/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id, actor)
	if err != nil {
		switch {
		case errors.Is(err, trainings.ErrTrainingNotFound):
			h.logger.Warn("GET /schedules/{id} - Training not found: id=%d, user_id=%d", id, actor.UserID)
			handlers.RespondNotFound(w, msgTrainingNotFound)

		case errors.Is(err, trainings.ErrAccessDenied):
			h.logger.Warn("GET /schedules/{id} - Access denied: id=%d, user_id=%d", id, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /schedules/{id} - Failed to get training: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/{id} - Training fetched: id=%d, user_id=%d", id, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
