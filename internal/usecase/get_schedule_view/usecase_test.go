package get_schedule_view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockTrainingRepo struct {
	trainings  []*domain.Training
	err        error
	lastFilter domain.TrainingsFilter
}

func (m *mockTrainingRepo) GetByRange(_ context.Context, filter domain.TrainingsFilter) ([]*domain.Training, error) {
	m.lastFilter = filter
	return m.trainings, m.err
}

func TestUseCase_Execute_DailyView(t *testing.T) {
	repo := &mockTrainingRepo{
		trainings: []*domain.Training{
			makeTraining(1,
				time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)),
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Actor: domain.Actor{UserID: 1, Role: domain.RoleAdmin},
		View:  ViewDaily,
		Date:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, ViewDaily, resp.View)
	require.Len(t, resp.Daily["08:00"], 1)
	assert.Equal(t, int64(1), resp.Daily["08:00"][0].ID)
}

func TestUseCase_Execute_ScopesTrainerToOwnSessions(t *testing.T) {
	repo := &mockTrainingRepo{}
	uc := NewUseCase(repo, nopLogger{})

	otherTrainer := int64(99)
	_, err := uc.Execute(context.Background(), &Request{
		Actor:     domain.Actor{UserID: 7, Role: domain.RoleTrainer},
		View:      ViewDaily,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		TrainerID: &otherTrainer,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.TrainerID)
	assert.Equal(t, int64(7), *repo.lastFilter.TrainerID)
}

func TestUseCase_Execute_AppliesSearch(t *testing.T) {
	matching := makeTraining(1,
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	matching.ClientName = "María Pérez"

	other := makeTraining(2,
		time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC))
	other.ClientName = "Juan López"

	repo := &mockTrainingRepo{trainings: []*domain.Training{matching, other}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Actor:  domain.Actor{UserID: 1, Role: domain.RoleAdmin},
		View:   ViewDaily,
		Date:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Search: "maría",
	})

	require.NoError(t, err)
	require.Len(t, resp.Daily, 1)
	require.Len(t, resp.Daily["08:00"], 1)
	assert.Equal(t, int64(1), resp.Daily["08:00"][0].ID)
}

func TestUseCase_Execute_ViewsShowTerminalTrainings(t *testing.T) {
	completed := makeTraining(1,
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	completed.Status = domain.StatusCompleted

	cancelled := makeTraining(2,
		time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC))
	cancelled.Status = domain.StatusCancelled

	repo := &mockTrainingRepo{trainings: []*domain.Training{completed, cancelled}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Actor: domain.Actor{UserID: 1, Role: domain.RoleAdmin},
		View:  ViewDaily,
		Date:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	// Выборка для представлений включает неактивные тренировки:
	// прошедший месяц - это история, а не пустая сетка
	assert.True(t, repo.lastFilter.IncludeInactive)
	require.Len(t, resp.Daily["08:00"], 1)
	require.Len(t, resp.Daily["10:00"], 1)
	assert.Equal(t, string(domain.StatusCompleted), resp.Daily["08:00"][0].Status)
	assert.Equal(t, string(domain.StatusCancelled), resp.Daily["10:00"][0].Status)
}

func TestUseCase_Execute_SearchMatchesTerminalStatus(t *testing.T) {
	completed := makeTraining(1,
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	completed.Status = domain.StatusCompleted

	scheduled := makeTraining(2,
		time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC))

	repo := &mockTrainingRepo{trainings: []*domain.Training{completed, scheduled}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Actor:  domain.Actor{UserID: 1, Role: domain.RoleAdmin},
		View:   ViewDaily,
		Date:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Search: "completada",
	})

	require.NoError(t, err)
	require.Len(t, resp.Daily, 1)
	require.Len(t, resp.Daily["08:00"], 1)
	assert.Equal(t, int64(1), resp.Daily["08:00"][0].ID)
}

func TestUseCase_Execute_CalendarFetchesVisibleGrid(t *testing.T) {
	repo := &mockTrainingRepo{}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Actor: domain.Actor{UserID: 1, Role: domain.RoleAdmin},
		View:  ViewCalendar,
		Date:  time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Zero(t, len(resp.Calendar)%7)

	// Выборка покрывает хвосты соседних месяцев
	require.NotNil(t, repo.lastFilter.StartDate)
	require.NotNil(t, repo.lastFilter.EndDate)
	assert.Equal(t, time.February, repo.lastFilter.StartDate.Month())
	assert.Equal(t, time.April, repo.lastFilter.EndDate.Month())
}

func TestUseCase_Execute_InvalidView(t *testing.T) {
	uc := NewUseCase(&mockTrainingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Actor: domain.Actor{UserID: 1, Role: domain.RoleAdmin},
		View:  "semanal",
		Date:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidView)
}

func TestUseCase_Execute_ZeroDateIsEmptyNotError(t *testing.T) {
	repo := &mockTrainingRepo{
		trainings: []*domain.Training{
			makeTraining(1,
				time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)),
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Actor: domain.Actor{UserID: 1, Role: domain.RoleAdmin},
		View:  ViewDaily,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Daily)
}
