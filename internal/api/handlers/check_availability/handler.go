package check_availability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/api/handlers"
	"github.com/gymsys/GMS-ScheduleService/internal/api/middleware"
	checkAvailability "github.com/gymsys/GMS-ScheduleService/internal/usecase/check_availability"
)

const (
	msgUnauthorized     = "usuario no autenticado"
	msgInvalidDates     = "formato de fecha inválido, se espera ISO-8601"
	msgInvalidTrainerID = "identificador de entrenador inválido"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/disponibilidad
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()

	start, err := time.Parse(time.RFC3339, query.Get("inicio"))
	if err != nil {
		h.logger.Warn("GET /schedules/disponibilidad - Invalid inicio: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}
	end, err := time.Parse(time.RFC3339, query.Get("fin"))
	if err != nil {
		h.logger.Warn("GET /schedules/disponibilidad - Invalid fin: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	req := &checkAvailability.Request{
		Actor:     actor,
		StartTime: start,
		EndTime:   end,
	}

	if raw := query.Get("id_entrenador"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /schedules/disponibilidad - Invalid trainer id %q", raw)
			handlers.RespondBadRequest(w, msgInvalidTrainerID)
			return
		}
		req.TrainerID = &id
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /schedules/disponibilidad - Failed to check availability: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules/disponibilidad - Checked: user_id=%d, available=%v", actor.UserID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
