package trainings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	trainingRepo "github.com/gymsys/GMS-ScheduleService/internal/infra/storage/training"
	"github.com/gymsys/GMS-ScheduleService/internal/service/trainings/models"
	"github.com/gymsys/GMS-ScheduleService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockTrainingRepo struct {
	training *domain.Training
	list     []*domain.Training

	lastFilter    domain.TrainingsFilter
	updatedWith   *domain.Training
	updatedStatus domain.TrainingStatus
	deleted       bool
}

func (m *mockTrainingRepo) GetByID(_ context.Context, _ int64) (*domain.Training, error) {
	if m.training == nil {
		return nil, trainingRepo.ErrTrainingNotFound
	}
	return m.training, nil
}

func (m *mockTrainingRepo) GetByRange(_ context.Context, filter domain.TrainingsFilter) ([]*domain.Training, error) {
	m.lastFilter = filter
	return m.list, nil
}

func (m *mockTrainingRepo) Update(_ context.Context, _ int64, t *domain.Training) (*domain.Training, error) {
	m.updatedWith = t
	return t, nil
}

func (m *mockTrainingRepo) UpdateStatus(_ context.Context, _ int64, status domain.TrainingStatus) error {
	m.updatedStatus = status
	return nil
}

func (m *mockTrainingRepo) Delete(_ context.Context, _ int64) error {
	m.deleted = true
	return nil
}

var (
	adminActor   = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
	trainerActor = domain.Actor{UserID: 7, Role: domain.RoleTrainer}
	clientActor  = domain.Actor{UserID: 42, Role: domain.RoleClient}
)

func sampleTraining() *domain.Training {
	return &domain.Training{
		ID:              10,
		Title:           "Sesión de fuerza",
		StartTime:       time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Status:          domain.StatusScheduled,
		ClientID:        42,
		ClientName:      "María Pérez",
		TrainerID:       7,
		TrainerName:     "Ana",
		TrainerLastName: "Gómez",
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("admin sees any training", func(t *testing.T) {
		svc := NewService(&mockTrainingRepo{training: sampleTraining()}, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 10, adminActor)

		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "Sesión de fuerza", resp.Title)
	})

	t.Run("client sees own session", func(t *testing.T) {
		svc := NewService(&mockTrainingRepo{training: sampleTraining()}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 10, clientActor)
		assert.NoError(t, err)
	})

	t.Run("foreign client is denied", func(t *testing.T) {
		svc := NewService(&mockTrainingRepo{training: sampleTraining()}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 10, domain.Actor{UserID: 99, Role: domain.RoleClient})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&mockTrainingRepo{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 10, adminActor)
		assert.ErrorIs(t, err, ErrTrainingNotFound)
	})
}

func TestService_List(t *testing.T) {
	t.Run("trainer scope is forced into the filter", func(t *testing.T) {
		repo := &mockTrainingRepo{list: []*domain.Training{sampleTraining()}}
		svc := NewService(repo, nopLogger{})

		// Тренер запрашивает чужой фильтр: роль берет верх
		resp, err := svc.List(context.Background(), &models.ListTrainingsRequest{
			Actor:     trainerActor,
			TrainerID: ptr.Ptr(int64(99)),
		})

		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.TrainerID)
		assert.Equal(t, int64(7), *repo.lastFilter.TrainerID)
		assert.Len(t, resp.Trainings, 1)
	})

	t.Run("search filters fetched trainings in memory", func(t *testing.T) {
		other := sampleTraining()
		other.ID = 11
		other.ClientName = "Carlos Ruiz"
		repo := &mockTrainingRepo{list: []*domain.Training{sampleTraining(), other}}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.List(context.Background(), &models.ListTrainingsRequest{
			Actor:  adminActor,
			Search: "maría",
		})

		require.NoError(t, err)
		require.Len(t, resp.Trainings, 1)
		assert.Equal(t, int64(10), resp.Trainings[0].ID)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc := NewService(&mockTrainingRepo{}, nopLogger{})

		_, err := svc.List(context.Background(), &models.ListTrainingsRequest{
			Actor:  adminActor,
			Status: ptr.Ptr("pendiente"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("partial update keeps unset fields", func(t *testing.T) {
		repo := &mockTrainingRepo{training: sampleTraining()}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Update(context.Background(), 10, &models.UpdateTrainingRequest{
			Actor: adminActor,
			Title: ptr.Ptr("Sesión funcional"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Sesión funcional", resp.Title)
		// Интервал не менялся
		require.NotNil(t, repo.updatedWith)
		assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), repo.updatedWith.StartTime)
	})

	t.Run("trainer can edit own session only", func(t *testing.T) {
		svc := NewService(&mockTrainingRepo{training: sampleTraining()}, nopLogger{})

		_, err := svc.Update(context.Background(), 10, &models.UpdateTrainingRequest{
			Actor: trainerActor,
			Title: ptr.Ptr("Otra sesión"),
		})
		assert.NoError(t, err)

		_, err = svc.Update(context.Background(), 10, &models.UpdateTrainingRequest{
			Actor: domain.Actor{UserID: 8, Role: domain.RoleTrainer},
			Title: ptr.Ptr("Otra sesión"),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("client cannot mutate", func(t *testing.T) {
		svc := NewService(&mockTrainingRepo{training: sampleTraining()}, nopLogger{})

		_, err := svc.Update(context.Background(), 10, &models.UpdateTrainingRequest{
			Actor: clientActor,
			Title: ptr.Ptr("Mi sesión"),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("terminal training is not editable", func(t *testing.T) {
		completed := sampleTraining()
		completed.Status = domain.StatusCompleted
		svc := NewService(&mockTrainingRepo{training: completed}, nopLogger{})

		_, err := svc.Update(context.Background(), 10, &models.UpdateTrainingRequest{
			Actor: adminActor,
			Title: ptr.Ptr("Sesión editada"),
		})
		assert.ErrorIs(t, err, ErrTrainingNotEditable)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		svc := NewService(&mockTrainingRepo{training: sampleTraining()}, nopLogger{})

		_, err := svc.Update(context.Background(), 10, &models.UpdateTrainingRequest{
			Actor:   adminActor,
			EndTime: ptr.Ptr(time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("capacity below occupied spots is rejected", func(t *testing.T) {
		group := sampleTraining()
		group.MaxSpots = ptr.Ptr(10)
		group.OccupiedSpots = 6
		svc := NewService(&mockTrainingRepo{training: group}, nopLogger{})

		_, err := svc.Update(context.Background(), 10, &models.UpdateTrainingRequest{
			Actor:    adminActor,
			MaxSpots: ptr.Ptr(5),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		repo := &mockTrainingRepo{training: sampleTraining()}
		svc := NewService(repo, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
			Actor:  adminActor,
			Status: string(domain.StatusInProgress),
		})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusInProgress, repo.updatedStatus)
	})

	t.Run("scheduled cannot jump to completed", func(t *testing.T) {
		svc := NewService(&mockTrainingRepo{training: sampleTraining()}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
			Actor:  adminActor,
			Status: string(domain.StatusCompleted),
		})
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})

	t.Run("terminal status is final", func(t *testing.T) {
		cancelled := sampleTraining()
		cancelled.Status = domain.StatusCancelled
		svc := NewService(&mockTrainingRepo{training: cancelled}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
			Actor:  adminActor,
			Status: string(domain.StatusScheduled),
		})
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := NewService(&mockTrainingRepo{training: sampleTraining()}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
			Actor:  adminActor,
			Status: "pausada",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("admin deletes", func(t *testing.T) {
		repo := &mockTrainingRepo{training: sampleTraining()}
		svc := NewService(repo, nopLogger{})

		require.NoError(t, svc.Delete(context.Background(), 10, adminActor))
		assert.True(t, repo.deleted)
	})

	t.Run("client is denied", func(t *testing.T) {
		repo := &mockTrainingRepo{training: sampleTraining()}
		svc := NewService(repo, nopLogger{})

		err := svc.Delete(context.Background(), 10, clientActor)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.False(t, repo.deleted)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&mockTrainingRepo{}, nopLogger{})
		assert.ErrorIs(t, svc.Delete(context.Background(), 10, adminActor), ErrTrainingNotFound)
	})
}
