package get_client_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	staffClient "github.com/gymsys/GMS-ScheduleService/internal/integrations/staffservice"
	"github.com/gymsys/GMS-ScheduleService/pkg/ptr"
)

// UseCase use case получения доступных слотов для записи клиента
type UseCase struct {
	trainingRepo TrainingRepository
	contractRepo ContractRepository
	staffClient  StaffServiceClient
	timeProvider TimeProvider
	settings     GymSettings
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	trainingRepo TrainingRepository,
	contractRepo ContractRepository,
	staffClient StaffServiceClient,
	settings GymSettings,
	logger Logger,
) *UseCase {
	return &UseCase{
		trainingRepo: trainingRepo,
		contractRepo: contractRepo,
		staffClient:  staffClient,
		timeProvider: &RealTimeProvider{},
		settings:     settings,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetClientSlots: client=%d, date=%s, trainer=%v",
		req.Actor.UserID, req.Date.Format(domain.DateFormat), req.TrainerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetClientSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверка допуска: без действующего контракта слоты не показываются
	contracts, err := uc.contractRepo.GetActiveByClientID(ctx, req.Actor.UserID, now)
	if err != nil {
		uc.logger.Error("GetClientSlots: failed to get contracts for client=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: failed to get contracts: %v", ErrInternal, err)
	}
	if !domain.HasAnyCurrentlyActive(contracts, now) {
		uc.logger.Warn("GetClientSlots: client=%d has no active contract", req.Actor.UserID)
		return nil, ErrNoActiveContract
	}

	// 4. Собираем ростер тренеров: конкретный тренер или весь список
	roster, degraded, err := uc.resolveRoster(ctx, req.TrainerID)
	if err != nil {
		return nil, err
	}

	// 5. Генерируем слоты по часам работы зала
	slots, err := generateTimeSlots(uc.settings, req.Date, now)
	if err != nil {
		uc.logger.Error("GetClientSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 6. Получаем тренировки на дату
	trainings, err := uc.trainingRepo.GetByRange(ctx, domain.TrainingsFilter{
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
		TrainerID: req.TrainerID,
	})
	if err != nil {
		uc.logger.Error("GetClientSlots: failed to get trainings: %v", err)
		return nil, fmt.Errorf("%w: failed to get trainings: %v", ErrInternal, err)
	}

	// 7. Считаем доступность каждого слота по ростеру
	result := buildSlots(slots, req.Date, uc.settings, roster, trainings)

	uc.logger.Info("GetClientSlots: built %d slots for client=%d on %s",
		len(result), req.Actor.UserID, req.Date.Format(domain.DateFormat))
	return &Response{
		Date:     req.Date.Format(domain.DateFormat),
		Slots:    result,
		Degraded: degraded,
	}, nil
}

// resolveRoster возвращает тренеров, по которым считается доступность.
// Для конкретного тренера недоступность справочника фатальна, для
// полного списка деградация до резервного ростера допустима
func (uc *UseCase) resolveRoster(ctx context.Context, trainerID *int64) ([]staffClient.Trainer, bool, error) {
	if trainerID != nil {
		trainer, err := uc.staffClient.GetTrainer(ctx, *trainerID)
		if err != nil {
			if errors.Is(err, staffClient.ErrTrainerNotFound) {
				uc.logger.Warn("GetClientSlots: trainer=%d not found", *trainerID)
				return nil, false, ErrTrainerNotFound
			}
			uc.logger.Error("GetClientSlots: failed to get trainer=%d: %v", *trainerID, err)
			return nil, false, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
		}
		if !trainer.Active {
			uc.logger.Warn("GetClientSlots: trainer=%d is inactive", *trainerID)
			return nil, false, ErrTrainerInactive
		}
		return []staffClient.Trainer{*trainer}, false, nil
	}

	roster, degraded := uc.staffClient.GetActiveTrainersWithGracefulDegradation(ctx)
	if degraded {
		uc.logger.Warn("GetClientSlots: staff service unavailable, using fallback roster of %d trainers", len(roster))
	}
	return roster, degraded, nil
}
