package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type mockTrainingRepo struct {
	trainings  []*domain.Training
	rangeCalls int
}

func (m *mockTrainingRepo) GetByRange(_ context.Context, _ domain.TrainingsFilter) ([]*domain.Training, error) {
	m.rangeCalls++
	return m.trainings, nil
}

var testSettings = GymSettings{
	OpenTime:                "07:00",
	CloseTime:               "22:00",
	MinBookingNoticeMinutes: 60,
	MaxConcurrentPerTrainer: 1,
}

func newTestUseCase(repo *mockTrainingRepo) *UseCase {
	uc := NewUseCase(repo, testSettings, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	return uc
}

func availabilityRequest(trainerID *int64, start, end time.Time) *Request {
	return &Request{
		Actor:     domain.Actor{UserID: 42, Role: domain.RoleClient},
		TrainerID: trainerID,
		StartTime: start,
		EndTime:   end,
	}
}

func TestUseCase_Execute_AvailableSlot(t *testing.T) {
	uc := newTestUseCase(&mockTrainingRepo{})

	resp, err := uc.Execute(context.Background(), availabilityRequest(
		ptr.Ptr(int64(7)),
		time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
	))

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Reasons)
}

func TestUseCase_Execute_InvalidRangeShortCircuits(t *testing.T) {
	repo := &mockTrainingRepo{}
	uc := newTestUseCase(repo)

	// Конец раньше начала: остальные проверки не выполняются
	resp, err := uc.Execute(context.Background(), availabilityRequest(
		ptr.Ptr(int64(7)),
		time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
	))

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, []string{ReasonInvalidRange}, resp.Reasons)
	assert.Zero(t, repo.rangeCalls)
}

func TestUseCase_Execute_ReasonsAccumulate(t *testing.T) {
	busy := &domain.Training{
		Status:    domain.StatusScheduled,
		TrainerID: 7,
		StartTime: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
	}
	uc := newTestUseCase(&mockTrainingRepo{trainings: []*domain.Training{busy}})

	// Начало через 15 минут, пересекается с занятым слотом
	resp, err := uc.Execute(context.Background(), availabilityRequest(
		ptr.Ptr(int64(7)),
		time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 10, 15, 0, 0, time.UTC),
	))

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Contains(t, resp.Reasons, ReasonTooSoon)
	assert.Contains(t, resp.Reasons, ReasonTrainerOccupied)
	assert.Len(t, resp.Reasons, 2)
}

func TestUseCase_Execute_OutsideGymHours(t *testing.T) {
	uc := newTestUseCase(&mockTrainingRepo{})

	resp, err := uc.Execute(context.Background(), availabilityRequest(
		nil,
		time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC),
	))

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, []string{ReasonOutsideHours}, resp.Reasons)
}

func TestUseCase_Execute_TouchingSessionDoesNotOccupyTrainer(t *testing.T) {
	adjacent := &domain.Training{
		Status:    domain.StatusScheduled,
		TrainerID: 7,
		StartTime: time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
	}
	uc := newTestUseCase(&mockTrainingRepo{trainings: []*domain.Training{adjacent}})

	resp, err := uc.Execute(context.Background(), availabilityRequest(
		ptr.Ptr(int64(7)),
		time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
	))

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestUseCase_Execute_CancelledSessionDoesNotOccupyTrainer(t *testing.T) {
	cancelled := &domain.Training{
		Status:    domain.StatusCancelled,
		TrainerID: 7,
		StartTime: time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
	}
	uc := newTestUseCase(&mockTrainingRepo{trainings: []*domain.Training{cancelled}})

	resp, err := uc.Execute(context.Background(), availabilityRequest(
		ptr.Ptr(int64(7)),
		time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
	))

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestUseCase_Execute_NoTrainerChecksOnlyGymRules(t *testing.T) {
	repo := &mockTrainingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), availabilityRequest(
		nil,
		time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
	))

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Zero(t, repo.rangeCalls)
}
