package delete_training

import (
	"context"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
)

type TrainingsService interface {
	Delete(ctx context.Context, id int64, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
