package update_training

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
	msgUnauthorized        = "usuario no autenticado"
	msgInvalidID           = "identificador de entrenamiento inválido"
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgInvalidDates        = "formato de fecha inválido, se espera ISO-8601"
	msgTrainingNotFound    = "entrenamiento no encontrado"
	msgAccessDenied        = "no tiene permiso para modificar este entrenamiento"
	msgTrainingNotEditable = "el entrenamiento ya no puede modificarse"
	msgInvalidTimeRange    = "rango horario inválido"
	msgInvalidInput        = "datos de entrada inválidos"
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

// Handle PUT /api/v1/schedules/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /schedules/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateTrainingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedules/{id} - Invalid request body: id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(actor)
	if err != nil {
		h.logger.Warn("PUT /schedules/{id} - Failed to parse request: id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.Update(r.Context(), id, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, trainings.ErrTrainingNotFound):
			h.logger.Warn("PUT /schedules/{id} - Training not found: id=%d, user_id=%d", id, actor.UserID)
			handlers.RespondNotFound(w, msgTrainingNotFound)

		case errors.Is(err, trainings.ErrAccessDenied):
			h.logger.Warn("PUT /schedules/{id} - Access denied: id=%d, user_id=%d", id, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, trainings.ErrTrainingNotEditable):
			h.logger.Warn("PUT /schedules/{id} - Training not editable: id=%d, user_id=%d", id, actor.UserID)
			handlers.RespondError(w, http.StatusConflict, msgTrainingNotEditable)

		case errors.Is(err, trainings.ErrInvalidTimeRange):
			h.logger.Warn("PUT /schedules/{id} - Invalid time range: id=%d, user_id=%d", id, actor.UserID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, trainings.ErrInvalidInput):
			h.logger.Warn("PUT /schedules/{id} - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /schedules/{id} - Failed to update training: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedules/{id} - Training updated: id=%d, user_id=%d", id, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
