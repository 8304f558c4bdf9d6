package get_schedule_view

import (
	"context"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
)

// TrainingRepository интерфейс репозитория тренировок
type TrainingRepository interface {
	// GetByRange получает тренировки за период с учетом фильтра
	GetByRange(ctx context.Context, filter domain.TrainingsFilter) ([]*domain.Training, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
