package get_schedule_view

import (
	"context"

	getScheduleView "github.com/gymsys/GMS-ScheduleService/internal/usecase/get_schedule_view"
)

type GetScheduleViewUseCase interface {
	Execute(ctx context.Context, req *getScheduleView.Request) (*getScheduleView.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
