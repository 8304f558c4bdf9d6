package book_training

import (
	"context"

	bookTraining "github.com/gymsys/GMS-ScheduleService/internal/usecase/book_training"
)

type BookTrainingUseCase interface {
	Execute(ctx context.Context, req *bookTraining.Request) (*bookTraining.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
