package get_training

import (
	"context"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/internal/service/trainings/models"
)

type TrainingsService interface {
	GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.TrainingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
