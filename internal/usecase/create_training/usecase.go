package create_training

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	clientRepo "github.com/gymsys/GMS-ScheduleService/internal/infra/storage/client"
	staffClient "github.com/gymsys/GMS-ScheduleService/internal/integrations/staffservice"
	"github.com/gymsys/GMS-ScheduleService/pkg/ptr"
)

// UseCase use case создания тренировки администратором или тренером
type UseCase struct {
	trainingRepo TrainingRepository
	contractRepo ContractRepository
	clientRepo   ClientRepository
	staffClient  StaffServiceClient
	txManager    TxManager
	timeProvider TimeProvider
	settings     GymSettings
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	trainingRepo TrainingRepository,
	contractRepo ContractRepository,
	clientRepo ClientRepository,
	staffClient StaffServiceClient,
	txManager TxManager,
	settings GymSettings,
	logger Logger,
) *UseCase {
	return &UseCase{
		trainingRepo: trainingRepo,
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
		staffClient:  staffClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		settings:     settings,
		logger:       logger,
	}
}

// Execute выполняет use case создания тренировки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTraining: user=%d role=%s, client=%d, trainer=%d",
		req.Actor.UserID, req.Actor.Role, req.ClientID, req.TrainerID)

	// 1. Валидация входных данных и роли
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTraining: validation failed: %v", err)
		return nil, err
	}

	// 2. Тренер создает сессии только на себя
	trainerID := req.TrainerID
	if req.Actor.Role == domain.RoleTrainer {
		trainerID = req.Actor.UserID
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Проверка допуска клиента: контракт должен действовать на дату записи
	contracts, err := uc.contractRepo.GetActiveByClientID(ctx, req.ClientID, now)
	if err != nil {
		uc.logger.Error("CreateTraining: failed to get contracts for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get contracts: %v", ErrInternal, err)
	}
	if !domain.HasAnyCurrentlyActive(contracts, now) {
		uc.logger.Warn("CreateTraining: client=%d has no active contract", req.ClientID)
		return nil, ErrNoActiveContract
	}

	// 5. Получаем клиента для денормализованных полей карточки
	client, err := uc.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateTraining: client=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateTraining: failed to get client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 6. Получаем тренера из справочника персонала
	trainer, err := uc.staffClient.GetTrainer(ctx, trainerID)
	if err != nil {
		if errors.Is(err, staffClient.ErrTrainerNotFound) {
			uc.logger.Warn("CreateTraining: trainer=%d not found", trainerID)
			return nil, ErrTrainerNotFound
		}
		uc.logger.Error("CreateTraining: failed to get trainer=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
	}
	if !trainer.Active {
		uc.logger.Warn("CreateTraining: trainer=%d is inactive", trainerID)
		return nil, ErrTrainerInactive
	}

	// 7. Часы работы зала
	if err := validateGymHours(req.StartTime, req.EndTime, uc.settings); err != nil {
		uc.logger.Warn("CreateTraining: gym hours check failed: %v", err)
		return nil, err
	}

	// 8. Название по умолчанию
	title := domain.DefaultSessionTitle
	if req.Title != nil && *req.Title != "" {
		title = *req.Title
	}

	// 9. Создаем тренировку в serializable-транзакции с проверкой конфликтов
	var result *Response
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		day := req.StartTime.UTC()
		sameDay, err := uc.trainingRepo.GetByRange(txCtx, domain.TrainingsFilter{
			StartDate: ptr.Ptr(day),
			EndDate:   ptr.Ptr(day),
			TrainerID: ptr.Ptr(trainerID),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get trainer schedule: %v", ErrInternal, err)
		}

		overlapping := 0
		for _, t := range sameDay {
			if t.IsActive() && t.Overlaps(req.StartTime, req.EndTime) {
				overlapping++
			}
		}
		if overlapping >= uc.settings.MaxConcurrentPerTrainer {
			uc.logger.Warn("CreateTraining: trainer=%d has no free spots for %s-%s",
				trainerID,
				req.StartTime.UTC().Format(domain.TimeFormat),
				req.EndTime.UTC().Format(domain.TimeFormat))
			return ErrSlotNotAvailable
		}

		created, err := uc.trainingRepo.Create(txCtx, &domain.Training{
			Title:           title,
			Description:     req.Description,
			StartTime:       req.StartTime.UTC(),
			EndTime:         req.EndTime.UTC(),
			Status:          domain.StatusScheduled,
			ClientID:        client.ID,
			ClientName:      client.Name,
			ClientDocument:  client.Document,
			TrainerID:       trainer.ID,
			TrainerName:     trainer.FirstName,
			TrainerLastName: trainer.LastName,
			MaxSpots:        req.MaxSpots,
			Notes:           req.Notes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create training: %v", ErrInternal, err)
		}

		result = fromDomainTraining(created)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateTraining: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateTraining: successfully created training id=%d", result.ID)
	return result, nil
}
