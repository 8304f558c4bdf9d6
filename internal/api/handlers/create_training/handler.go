package create_training

import (
	"errors"
	"net/http"

	"github.com/gymsys/GMS-ScheduleService/internal/api/handlers"
	"github.com/gymsys/GMS-ScheduleService/internal/api/middleware"
	createTraining "github.com/gymsys/GMS-ScheduleService/internal/usecase/create_training"
)

const (
	msgUnauthorized       = "usuario no autenticado"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDates       = "formato de fecha inválido, se espera ISO-8601"
	msgAccessDenied       = "no tiene permiso para crear entrenamientos"
	msgNoActiveContract   = "el cliente no tiene un contrato activo"
	msgClientNotFound     = "cliente no encontrado"
	msgTrainerNotFound    = "entrenador no encontrado"
	msgTrainerInactive    = "el entrenador no está activo"
	msgSlotNotAvailable   = "el entrenador no tiene cupo disponible en ese horario"
	msgOutsideGymHours    = "el horario está fuera del horario del gimnasio"
	msgInvalidTimeRange   = "rango horario inválido"
	msgInvalidInput       = "datos de entrada inválidos"
)

type Handler struct {
	useCase CreateTrainingUseCase
	logger  Logger
}

func NewHandler(useCase CreateTrainingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateTrainingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /schedules - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createTraining.ErrAccessDenied):
			h.logger.Warn("POST /schedules - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createTraining.ErrNoActiveContract):
			h.logger.Warn("POST /schedules - No active contract: client_id=%d", req.ClientID)
			handlers.RespondError(w, http.StatusConflict, msgNoActiveContract)

		case errors.Is(err, createTraining.ErrClientNotFound):
			h.logger.Warn("POST /schedules - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createTraining.ErrTrainerNotFound):
			h.logger.Warn("POST /schedules - Trainer not found: trainer_id=%d", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, createTraining.ErrTrainerInactive):
			h.logger.Warn("POST /schedules - Trainer inactive: trainer_id=%d", req.TrainerID)
			handlers.RespondBadRequest(w, msgTrainerInactive)

		case errors.Is(err, createTraining.ErrSlotNotAvailable):
			h.logger.Warn("POST /schedules - Slot not available: trainer_id=%d, user_id=%d", req.TrainerID, actor.UserID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createTraining.ErrOutsideGymHours):
			h.logger.Warn("POST /schedules - Outside gym hours: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgOutsideGymHours)

		case errors.Is(err, createTraining.ErrInvalidTimeRange):
			h.logger.Warn("POST /schedules - Invalid time range: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createTraining.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedules - Failed to create training: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Training created: id=%d, user_id=%d", result.ID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
