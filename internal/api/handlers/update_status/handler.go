package update_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gymsys/GMS-ScheduleService/internal/api/handlers"
	"github.com/gymsys/GMS-ScheduleService/internal/api/middleware"
	"github.com/gymsys/GMS-ScheduleService/internal/service/trainings"
	"github.com/gymsys/GMS-ScheduleService/internal/service/trainings/models"
)

const (
	msgUnauthorized      = "usuario no autenticado"
	msgInvalidID         = "identificador de entrenamiento inválido"
	msgInvalidBody       = "cuerpo de la solicitud inválido"
	msgTrainingNotFound  = "entrenamiento no encontrado"
	msgAccessDenied      = "no tiene permiso para modificar este entrenamiento"
	msgInvalidTransition = "la transición de estado no está permitida"
	msgInvalidStatus     = "estado de entrenamiento inválido"
)

// UpdateStatusRequest HTTP-модель смены статуса
type UpdateStatusRequest struct {
	Status string `json:"estado"`
}

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

// Handle PATCH /api/v1/schedules/{id}/estado
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PATCH /schedules/{id}/estado - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /schedules/{id}/estado - Invalid request body: id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	serviceReq := &models.UpdateStatusRequest{
		Actor:  actor,
		Status: req.Status,
	}

	if err := h.service.UpdateStatus(r.Context(), id, serviceReq); err != nil {
		switch {
		case errors.Is(err, trainings.ErrTrainingNotFound):
			h.logger.Warn("PATCH /schedules/{id}/estado - Training not found: id=%d, user_id=%d", id, actor.UserID)
			handlers.RespondNotFound(w, msgTrainingNotFound)

		case errors.Is(err, trainings.ErrAccessDenied):
			h.logger.Warn("PATCH /schedules/{id}/estado - Access denied: id=%d, user_id=%d", id, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, trainings.ErrInvalidStatusTransition):
			h.logger.Warn("PATCH /schedules/{id}/estado - Invalid transition: id=%d, status=%s", id, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, trainings.ErrInvalidInput):
			h.logger.Warn("PATCH /schedules/{id}/estado - Invalid status: id=%d, status=%s", id, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /schedules/{id}/estado - Failed to update status: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /schedules/{id}/estado - Status updated: id=%d, status=%s, user_id=%d", id, req.Status, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"estado": req.Status})
}
