package get_active_clients

import (
	"context"

	"github.com/gymsys/GMS-ScheduleService/internal/service/directory/models"
)

type DirectoryService interface {
	ActiveClients(ctx context.Context) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
