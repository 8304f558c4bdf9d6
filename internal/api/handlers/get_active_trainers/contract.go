package get_active_trainers

import (
	"context"

	"github.com/gymsys/GMS-ScheduleService/internal/service/directory/models"
)

type DirectoryService interface {
	ActiveTrainers(ctx context.Context) (*models.TrainerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
