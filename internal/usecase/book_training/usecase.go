package book_training

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	clientRepo "github.com/gymsys/GMS-ScheduleService/internal/infra/storage/client"
	trainingRepo "github.com/gymsys/GMS-ScheduleService/internal/infra/storage/training"
	staffClient "github.com/gymsys/GMS-ScheduleService/internal/integrations/staffservice"
	"github.com/gymsys/GMS-ScheduleService/pkg/ptr"
)

// UseCase use case записи клиента на тренировку
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

// Execute выполняет use case записи на тренировку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookTraining: client=%d, trainer=%d, start=%s",
		req.Actor.UserID, req.TrainerID, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookTraining: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверка допуска: без действующего контракта запись запрещена.
	// Жесткий отказ до любых обращений к расписанию.
	contracts, err := uc.contractRepo.GetActiveByClientID(ctx, req.Actor.UserID, now)
	if err != nil {
		uc.logger.Error("BookTraining: failed to get contracts for client=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: failed to get contracts: %v", ErrInternal, err)
	}
	if !domain.HasAnyCurrentlyActive(contracts, now) {
		uc.logger.Warn("BookTraining: client=%d has no active contract", req.Actor.UserID)
		return nil, ErrNoActiveContract
	}

	// 4. Получаем клиента для денормализованных полей карточки
	client, err := uc.clientRepo.GetByID(ctx, req.Actor.UserID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("BookTraining: client=%d not found", req.Actor.UserID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("BookTraining: failed to get client=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 5. Получаем тренера из справочника персонала
	trainer, err := uc.staffClient.GetTrainer(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, staffClient.ErrTrainerNotFound) {
			uc.logger.Warn("BookTraining: trainer=%d not found", req.TrainerID)
			return nil, ErrTrainerNotFound
		}
		uc.logger.Error("BookTraining: failed to get trainer=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
	}
	if !trainer.Active {
		uc.logger.Warn("BookTraining: trainer=%d is inactive", req.TrainerID)
		return nil, ErrTrainerInactive
	}

	// 6. Минимальное уведомление до начала сессии
	if req.StartTime.Before(now.Add(minNotice(uc.settings))) {
		uc.logger.Warn("BookTraining: client=%d booking starts too soon", req.Actor.UserID)
		return nil, ErrBookingTooSoon
	}

	// 7. Часы работы зала
	if err := validateGymHours(req.StartTime, req.EndTime, uc.settings); err != nil {
		uc.logger.Warn("BookTraining: gym hours check failed: %v", err)
		return nil, err
	}

	// 8. Название по умолчанию
	title := domain.DefaultSessionTitle
	if req.Title != nil && *req.Title != "" {
		title = *req.Title
	}

	// 9. Создаем тренировку в serializable-транзакции: проверка ключа
	// идемпотентности, подсчет конфликтов под блокировкой, вставка
	var result *Response
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Повторная отправка той же формы возвращает существующую запись
		if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
			existing, err := uc.trainingRepo.GetByIdempotencyKey(txCtx, *req.IdempotencyKey)
			if err != nil && !errors.Is(err, trainingRepo.ErrTrainingNotFound) {
				return fmt.Errorf("%w: failed to check idempotency key: %v", ErrInternal, err)
			}
			if existing != nil {
				uc.logger.Info("BookTraining: idempotency key hit, returning training id=%d", existing.ID)
				result = fromDomainTraining(existing, true)
				return nil
			}
		}

		// 9.2. Считаем пересечения с активными сессиями тренера за день.
		// Выборка одного дня одного тренера внутри транзакции берет FOR UPDATE.
		day := req.StartTime.UTC()
		sameDay, err := uc.trainingRepo.GetByRange(txCtx, domain.TrainingsFilter{
			StartDate: ptr.Ptr(day),
			EndDate:   ptr.Ptr(day),
			TrainerID: ptr.Ptr(req.TrainerID),
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
			uc.logger.Warn("BookTraining: trainer=%d has no free spots for %s-%s",
				req.TrainerID,
				req.StartTime.UTC().Format(domain.TimeFormat),
				req.EndTime.UTC().Format(domain.TimeFormat))
			return ErrSlotNotAvailable
		}

		// 9.3. Вставляем тренировку с денормализованными полями карточки
		key := uuid.NewString()
		if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
			key = *req.IdempotencyKey
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
			Notes:           req.Notes,
			IdempotencyKey:  ptr.Ptr(key),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create training: %v", ErrInternal, err)
		}

		result = fromDomainTraining(created, false)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("BookTraining: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BookTraining: successfully booked training id=%d for client=%d", result.ID, req.Actor.UserID)
	return result, nil
}
