package get_client_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/api/handlers"
	"github.com/gymsys/GMS-ScheduleService/internal/api/middleware"
	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	getClientSlots "github.com/gymsys/GMS-ScheduleService/internal/usecase/get_client_slots"
)

const (
	msgUnauthorized     = "usuario no autenticado"
	msgInvalidDate      = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidTrainerID = "identificador de entrenador inválido"
	msgNoActiveContract = "no tiene un contrato activo"
	msgTrainerNotFound  = "entrenador no encontrado"
	msgTrainerInactive  = "el entrenador no está activo"
	msgInvalidInput     = "datos de entrada inválidos"
)

type Handler struct {
	useCase GetClientSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetClientSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/horarios
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("fecha"))
	if err != nil {
		h.logger.Warn("GET /schedules/horarios - Invalid fecha: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getClientSlots.Request{
		Actor: actor,
		Date:  date.UTC(),
	}

	if raw := query.Get("id_entrenador"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /schedules/horarios - Invalid trainer id %q", raw)
			handlers.RespondBadRequest(w, msgInvalidTrainerID)
			return
		}
		req.TrainerID = &id
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getClientSlots.ErrNoActiveContract):
			h.logger.Warn("GET /schedules/horarios - No active contract: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgNoActiveContract)

		case errors.Is(err, getClientSlots.ErrTrainerNotFound):
			h.logger.Warn("GET /schedules/horarios - Trainer not found: user_id=%d", actor.UserID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, getClientSlots.ErrTrainerInactive):
			h.logger.Warn("GET /schedules/horarios - Trainer inactive: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgTrainerInactive)

		case errors.Is(err, getClientSlots.ErrInvalidDate), errors.Is(err, getClientSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedules/horarios - Invalid input: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /schedules/horarios - Failed to get slots: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/horarios - %d slots returned: user_id=%d", len(result.Slots), actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
