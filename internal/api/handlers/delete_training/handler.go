package delete_training

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
	msgAccessDenied     = "no tiene permiso para eliminar este entrenamiento"
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

// Handle DELETE /api/v1/schedules/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /schedules/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id, actor); err != nil {
		switch {
		case errors.Is(err, trainings.ErrTrainingNotFound):
			h.logger.Warn("DELETE /schedules/{id} - Training not found: id=%d, user_id=%d", id, actor.UserID)
			handlers.RespondNotFound(w, msgTrainingNotFound)

		case errors.Is(err, trainings.ErrAccessDenied):
			h.logger.Warn("DELETE /schedules/{id} - Access denied: id=%d, user_id=%d", id, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /schedules/{id} - Failed to delete training: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedules/{id} - Training deleted: id=%d, user_id=%d", id, actor.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
