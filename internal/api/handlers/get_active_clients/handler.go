package get_active_clients

import (
	"net/http"

	"github.com/gymsys/GMS-ScheduleService/internal/api/handlers"
	"github.com/gymsys/GMS-ScheduleService/internal/api/middleware"
	"github.com/gymsys/GMS-ScheduleService/internal/domain"
)

const (
	msgUnauthorized = "usuario no autenticado"
	msgAccessDenied = "no tiene permiso para ver la lista de clientes"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/clientes
// Список клиентов видят только администраторы и тренеры
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleTrainer {
		h.logger.Warn("GET /schedules/clientes - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.ActiveClients(r.Context())
	if err != nil {
		h.logger.Error("GET /schedules/clientes - Failed to get clients: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules/clientes - %d clients returned: user_id=%d", len(result.Clients), actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
