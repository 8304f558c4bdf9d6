package trainings

import (
	"context"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
)

// TrainingRepository интерфейс репозитория тренировок
type TrainingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Training, error)
	GetByRange(ctx context.Context, filter domain.TrainingsFilter) ([]*domain.Training, error)
	Update(ctx context.Context, id int64, t *domain.Training) (*domain.Training, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TrainingStatus) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
