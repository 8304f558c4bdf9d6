package create_training

import (
	"context"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/internal/integrations/staffservice"
)

// TrainingRepository интерфейс репозитория тренировок
type TrainingRepository interface {
	// Create создает тренировку и возвращает ее с заполненными ID и метками времени
	Create(ctx context.Context, t *domain.Training) (*domain.Training, error)
	// GetByRange получает тренировки за период с учетом фильтра
	GetByRange(ctx context.Context, filter domain.TrainingsFilter) ([]*domain.Training, error)
}

// ContractRepository интерфейс репозитория контрактов
type ContractRepository interface {
	// GetActiveByClientID получает действующие контракты клиента на момент now
	GetActiveByClientID(ctx context.Context, clientID int64, now time.Time) ([]*domain.Contract, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// StaffServiceClient интерфейс клиента справочника персонала
type StaffServiceClient interface {
	GetTrainer(ctx context.Context, trainerID int64) (*staffservice.Trainer, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	// DoSerializable выполняет функцию в serializable-транзакции с ретраями
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

// GymSettings рабочие параметры зала, влияющие на создание тренировок
type GymSettings struct {
	OpenTime                string
	CloseTime               string
	MaxConcurrentPerTrainer int
}
