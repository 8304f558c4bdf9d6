package update_training

import (
	"context"

	"github.com/gymsys/GMS-ScheduleService/internal/service/trainings/models"
)

type TrainingsService interface {
	Update(ctx context.Context, id int64, req *models.UpdateTrainingRequest) (*models.TrainingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
