package get_client_slots

import (
	"context"

	getClientSlots "github.com/gymsys/GMS-ScheduleService/internal/usecase/get_client_slots"
)

type GetClientSlotsUseCase interface {
	Execute(ctx context.Context, req *getClientSlots.Request) (*getClientSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
