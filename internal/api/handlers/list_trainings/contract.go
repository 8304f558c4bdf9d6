package list_trainings

import (
	"context"

	"github.com/gymsys/GMS-ScheduleService/internal/service/trainings/models"
)

type TrainingsService interface {
	List(ctx context.Context, req *models.ListTrainingsRequest) (*models.TrainingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
