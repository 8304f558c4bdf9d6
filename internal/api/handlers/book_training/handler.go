package book_training

import (
	"errors"
	"net/http"

	"github.com/gymsys/GMS-ScheduleService/internal/api/handlers"
	"github.com/gymsys/GMS-ScheduleService/internal/api/middleware"
	bookTraining "github.com/gymsys/GMS-ScheduleService/internal/usecase/book_training"
)

const (
	msgUnauthorized       = "usuario no autenticado"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDates       = "formato de fecha inválido, se espera ISO-8601"
	msgNoActiveContract   = "no tiene un contrato activo para reservar"
	msgClientNotFound     = "cliente no encontrado"
	msgTrainerNotFound    = "entrenador no encontrado"
	msgTrainerInactive    = "el entrenador no está activo"
	msgSlotNotAvailable   = "el horario seleccionado ya no está disponible"
	msgBookingTooSoon     = "la sesión comienza demasiado pronto para reservar"
	msgOutsideGymHours    = "el horario está fuera del horario del gimnasio"
	msgInvalidTimeRange   = "rango horario inválido"
	msgInvalidInput       = "datos de entrada inválidos"
)

type Handler struct {
	useCase BookTrainingUseCase
	logger  Logger
}

func NewHandler(useCase BookTrainingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules/reservas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req BookTrainingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules/reservas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /schedules/reservas - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookTraining.ErrNoActiveContract):
			h.logger.Warn("POST /schedules/reservas - No active contract: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgNoActiveContract)

		case errors.Is(err, bookTraining.ErrClientNotFound):
			h.logger.Warn("POST /schedules/reservas - Client not found: user_id=%d", actor.UserID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, bookTraining.ErrTrainerNotFound):
			h.logger.Warn("POST /schedules/reservas - Trainer not found: trainer_id=%d", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, bookTraining.ErrTrainerInactive):
			h.logger.Warn("POST /schedules/reservas - Trainer inactive: trainer_id=%d", req.TrainerID)
			handlers.RespondBadRequest(w, msgTrainerInactive)

		case errors.Is(err, bookTraining.ErrSlotNotAvailable):
			h.logger.Warn("POST /schedules/reservas - Slot not available: trainer_id=%d, user_id=%d", req.TrainerID, actor.UserID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, bookTraining.ErrBookingTooSoon):
			h.logger.Warn("POST /schedules/reservas - Booking too soon: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgBookingTooSoon)

		case errors.Is(err, bookTraining.ErrOutsideGymHours):
			h.logger.Warn("POST /schedules/reservas - Outside gym hours: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgOutsideGymHours)

		case errors.Is(err, bookTraining.ErrInvalidTimeRange):
			h.logger.Warn("POST /schedules/reservas - Invalid time range: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, bookTraining.ErrInvalidInput):
			h.logger.Warn("POST /schedules/reservas - Invalid input: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedules/reservas - Failed to book training: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}

	h.logger.Info("POST /schedules/reservas - Training booked: id=%d, user_id=%d, already_existed=%v",
		result.ID, actor.UserID, result.AlreadyExisted)
	handlers.RespondJSON(w, status, result)
}
