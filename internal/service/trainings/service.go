package trainings

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	trainingRepo "github.com/gymsys/GMS-ScheduleService/internal/infra/storage/training"
	"github.com/gymsys/GMS-ScheduleService/internal/service/trainings/models"
)

// Service сервис для работы с тренировками
type Service struct {
	trainingRepo TrainingRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса тренировок
func NewService(trainingRepo TrainingRepository, logger Logger) *Service {
	return &Service{
		trainingRepo: trainingRepo,
		logger:       logger,
	}
}

// GetByID получает тренировку по ID.
// Видимость по ролям: админ видит всё, тренер — свои сессии,
// клиент — сессии, записанные на него.
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.TrainingResponse, error) {
	s.logger.Info("GetByID: fetching training id=%d for user=%d role=%s", id, actor.UserID, actor.Role)

	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, trainingRepo.ErrTrainingNotFound) {
			s.logger.Warn("GetByID: training id=%d not found", id)
			return nil, ErrTrainingNotFound
		}
		s.logger.Error("GetByID: repository error for training id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !actor.CanViewTraining(training) {
		s.logger.Warn("GetByID: access denied for user=%d role=%s to training id=%d", actor.UserID, actor.Role, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainTraining(training), nil
}

// List получает тренировки за период с фильтрацией и свободным поиском.
// Порядок применения: сужение по роли -> выборка -> поисковый предикат.
// Порядок результата наследуется от репозитория (start_time ASC).
func (s *Service) List(ctx context.Context, req *models.ListTrainingsRequest) (*models.TrainingListResponse, error) {
	s.logger.Info("List: fetching trainings for user=%d role=%s search=%q", req.Actor.UserID, req.Actor.Role, req.Search)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	trainings, err := s.trainingRepo.GetByRange(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if req.Search != "" {
		matched := make([]*domain.Training, 0, len(trainings))
		for _, t := range trainings {
			if t.MatchesSearch(req.Search) {
				matched = append(matched, t)
			}
		}
		trainings = matched
	}

	s.logger.Info("List: successfully fetched %d trainings for user=%d", len(trainings), req.Actor.UserID)
	return models.FromDomainTrainingList(trainings), nil
}

// Update частично обновляет тренировку: nil-поля запроса не меняются.
// Редактировать могут админ и тренер, ведущий сессию. Завершённые и
// отменённые тренировки не редактируются.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTrainingRequest) (*models.TrainingResponse, error) {
	s.logger.Info("Update: updating training id=%d by user=%d role=%s", id, req.Actor.UserID, req.Actor.Role)

	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, trainingRepo.ErrTrainingNotFound) {
			s.logger.Warn("Update: training id=%d not found", id)
			return nil, ErrTrainingNotFound
		}
		s.logger.Error("Update: repository error for training id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.checkMutationAccess(training, req.Actor); err != nil {
		s.logger.Warn("Update: access denied for user=%d role=%s to training id=%d", req.Actor.UserID, req.Actor.Role, id)
		return nil, err
	}

	if training.IsTerminal() {
		s.logger.Warn("Update: training id=%d is %s and cannot be edited", id, training.Status)
		return nil, ErrTrainingNotEditable
	}

	applyUpdate(training, req)

	if err := validateTraining(training); err != nil {
		s.logger.Warn("Update: validation failed for training id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.trainingRepo.Update(ctx, id, training)
	if err != nil {
		if errors.Is(err, trainingRepo.ErrTrainingNotFound) {
			return nil, ErrTrainingNotFound
		}
		s.logger.Error("Update: repository error for training id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated training id=%d", id)
	return models.FromDomainTraining(updated), nil
}

// UpdateStatus переводит тренировку в новый статус по state machine:
// programada -> en_curso -> completada, cancelada достижима из
// programada и en_curso. Терминальные статусы не покидаются.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating training id=%d to status=%s by user=%d", id, req.Status, req.Actor.UserID)

	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, trainingRepo.ErrTrainingNotFound) {
			s.logger.Warn("UpdateStatus: training id=%d not found", id)
			return ErrTrainingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for training id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.checkMutationAccess(training, req.Actor); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%d role=%s to training id=%d", req.Actor.UserID, req.Actor.Role, id)
		return err
	}

	newStatus, err := models.ToDomainTrainingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for training id=%d", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if !training.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for training id=%d",
			training.Status, newStatus, id)
		return ErrInvalidStatusTransition
	}

	if err := s.trainingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, trainingRepo.ErrTrainingNotFound) {
			return ErrTrainingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for training id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated training id=%d to status=%s", id, newStatus)
	return nil
}

// Delete физически удаляет тренировку. Подтверждение удаления — забота
// фронтенда; сервер выполняет DELETE только по явному запросу.
func (s *Service) Delete(ctx context.Context, id int64, actor domain.Actor) error {
	s.logger.Info("Delete: deleting training id=%d by user=%d role=%s", id, actor.UserID, actor.Role)

	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, trainingRepo.ErrTrainingNotFound) {
			s.logger.Warn("Delete: training id=%d not found", id)
			return ErrTrainingNotFound
		}
		s.logger.Error("Delete: repository error for training id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.checkMutationAccess(training, actor); err != nil {
		s.logger.Warn("Delete: access denied for user=%d role=%s to training id=%d", actor.UserID, actor.Role, id)
		return err
	}

	if err := s.trainingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, trainingRepo.ErrTrainingNotFound) {
			return ErrTrainingNotFound
		}
		s.logger.Error("Delete: repository error for training id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted training id=%d", id)
	return nil
}

// Вспомогательные методы

// checkMutationAccess проверяет право изменять тренировку:
// админ — всегда, тренер — только свои сессии, клиент — никогда
// (клиентский путь ограничен бронированием).
func (s *Service) checkMutationAccess(training *domain.Training, actor domain.Actor) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleTrainer:
		if training.TrainerID == actor.UserID {
			return nil
		}
	}
	return ErrAccessDenied
}

func applyUpdate(t *domain.Training, req *models.UpdateTrainingRequest) {
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.StartTime != nil {
		t.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		t.EndTime = *req.EndTime
	}
	if req.MaxSpots != nil {
		t.MaxSpots = req.MaxSpots
	}
	if req.Notes != nil {
		t.Notes = req.Notes
	}
}

func validateTraining(t *domain.Training) error {
	if t.Title == "" || len(t.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be 1..%d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	if !t.EndTime.After(t.StartTime) {
		return ErrInvalidTimeRange
	}
	duration := int(t.EndTime.Sub(t.StartTime).Minutes())
	if duration < domain.MinSessionMinutes || duration > domain.MaxSessionMinutes {
		return fmt.Errorf("%w: session must last %d..%d minutes", ErrInvalidTimeRange, domain.MinSessionMinutes, domain.MaxSessionMinutes)
	}
	if t.MaxSpots != nil {
		if *t.MaxSpots <= 0 || *t.MaxSpots > domain.MaxGroupSpots {
			return fmt.Errorf("%w: max spots must be 1..%d", ErrInvalidInput, domain.MaxGroupSpots)
		}
		if t.OccupiedSpots > *t.MaxSpots {
			return fmt.Errorf("%w: occupied spots exceed the new capacity", ErrInvalidInput)
		}
	}
	return nil
}
