package directory

import (
	"context"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/internal/integrations/staffservice"
)

// StaffClient клиент справочника персонала
type StaffClient interface {
	GetActiveTrainersWithGracefulDegradation(ctx context.Context) ([]staffservice.Trainer, bool)
	GetTrainer(ctx context.Context, trainerID int64) (*staffservice.Trainer, error)
}

// ClientRepository репозиторий для работы с клиентами
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetActive(ctx context.Context, now time.Time) ([]*domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider провайдер текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
