package directory

import (
	"context"
	"errors"
	"fmt"

	clientRepo "github.com/gymsys/GMS-ScheduleService/internal/infra/storage/client"
	"github.com/gymsys/GMS-ScheduleService/internal/service/directory/models"
)

// Service сервис справочников для форм расписания: списки тренеров и
// клиентов, которыми заполняются выпадающие поля.
type Service struct {
	staffClient  StaffClient
	clientRepo   ClientRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(staffClient StaffClient, clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		staffClient:  staffClient,
		clientRepo:   clientRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ActiveTrainers возвращает активных тренеров. Недоступность сервиса
// персонала не фатальна: возвращается резервный ростер и флаг degradado.
func (s *Service) ActiveTrainers(ctx context.Context) (*models.TrainerListResponse, error) {
	trainers, degraded := s.staffClient.GetActiveTrainersWithGracefulDegradation(ctx)
	if degraded {
		s.logger.Warn("ActiveTrainers: staff service unavailable, serving fallback roster of %d trainers", len(trainers))
	} else {
		s.logger.Info("ActiveTrainers: fetched %d trainers from staff service", len(trainers))
	}
	return models.FromStaffTrainers(trainers, degraded), nil
}

// ActiveClients возвращает клиентов с действующим контрактом на текущую дату
func (s *Service) ActiveClients(ctx context.Context) (*models.ClientListResponse, error) {
	now := s.timeProvider.Now()

	clients, err := s.clientRepo.GetActive(ctx, now)
	if err != nil {
		s.logger.Error("ActiveClients: repository error: %v", err)
		return nil, fmt.Errorf("%w: ActiveClients - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ActiveClients: fetched %d active clients", len(clients))
	return models.FromDomainClients(clients), nil
}

// ClientByID получает клиента по ID
func (s *Service) ClientByID(ctx context.Context, id int64) (*models.ClientOption, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("ClientByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: ClientByID - repository error: %v", ErrInternal, err)
	}

	return &models.ClientOption{
		ID:       client.ID,
		Name:     client.Name,
		Document: client.Document,
	}, nil
}
