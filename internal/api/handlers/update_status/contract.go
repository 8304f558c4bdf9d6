package update_status

import (
	"context"

	"github.com/gymsys/GMS-ScheduleService/internal/service/trainings/models"
)

type TrainingsService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
