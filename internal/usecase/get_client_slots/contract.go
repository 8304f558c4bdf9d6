package get_client_slots

import (
	"context"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/internal/integrations/staffservice"
)

// TrainingRepository интерфейс репозитория тренировок
type TrainingRepository interface {
	// GetByRange получает тренировки за период с учетом фильтра
	GetByRange(ctx context.Context, filter domain.TrainingsFilter) ([]*domain.Training, error)
}

// ContractRepository интерфейс репозитория контрактов
type ContractRepository interface {
	// GetActiveByClientID получает действующие контракты клиента на момент now
	GetActiveByClientID(ctx context.Context, clientID int64, now time.Time) ([]*domain.Contract, error)
}

// StaffServiceClient интерфейс клиента справочника персонала
type StaffServiceClient interface {
	GetTrainer(ctx context.Context, trainerID int64) (*staffservice.Trainer, error)
	GetActiveTrainersWithGracefulDegradation(ctx context.Context) ([]staffservice.Trainer, bool)
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

// GymSettings рабочие параметры зала, из которых генерируются слоты
type GymSettings struct {
	OpenTime                string
	CloseTime               string
	SlotDurationMinutes     int
	MinBookingNoticeMinutes int
	MaxConcurrentPerTrainer int
}
