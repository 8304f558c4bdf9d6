package get_schedule_view

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/api/handlers"
	"github.com/gymsys/GMS-ScheduleService/internal/api/middleware"
	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	getScheduleView "github.com/gymsys/GMS-ScheduleService/internal/usecase/get_schedule_view"
)

const (
	msgUnauthorized     = "usuario no autenticado"
	msgInvalidView      = "tipo de vista inválido, se espera diaria o calendario"
	msgInvalidTrainerID = "identificador de entrenador inválido"
)

type Handler struct {
	useCase GetScheduleViewUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/views
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()

	req := &getScheduleView.Request{
		Actor:  actor,
		View:   query.Get("vista"),
		Search: query.Get("buscar"),
	}

	// Нераспознанная дата дает пустое представление, не ошибку:
	// календарь с мусором в адресной строке показывается пустым
	if raw := query.Get("fecha"); raw != "" {
		if date, err := time.Parse(domain.DateFormat, raw); err == nil {
			req.Date = date.UTC()
		} else {
			h.logger.Warn("GET /schedules/views - Unparseable date %q: user_id=%d", raw, actor.UserID)
		}
	}

	if raw := query.Get("id_entrenador"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /schedules/views - Invalid trainer id %q", raw)
			handlers.RespondBadRequest(w, msgInvalidTrainerID)
			return
		}
		req.TrainerID = &id
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getScheduleView.ErrInvalidView):
			h.logger.Warn("GET /schedules/views - Invalid view %q: user_id=%d", req.View, actor.UserID)
			handlers.RespondBadRequest(w, msgInvalidView)

		default:
			h.logger.Error("GET /schedules/views - Failed to build view: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/views - View built: vista=%s, user_id=%d", req.View, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
