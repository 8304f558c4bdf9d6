package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrainingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusScheduled.IsValid())
	assert.True(t, StatusInProgress.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, TrainingStatus("pendiente").IsValid())
	assert.False(t, TrainingStatus("").IsValid())
}

func TestTraining_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    TrainingStatus
		to      TrainingStatus
		allowed bool
	}{
		{"scheduled to in progress", StatusScheduled, StatusInProgress, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to completed skips in progress", StatusScheduled, StatusCompleted, false},
		{"in progress to completed", StatusInProgress, StatusCompleted, true},
		{"in progress to cancelled", StatusInProgress, StatusCancelled, true},
		{"in progress back to scheduled", StatusInProgress, StatusScheduled, false},
		{"completed is terminal", StatusCompleted, StatusInProgress, false},
		{"cancelled is terminal", StatusCancelled, StatusScheduled, false},
		{"cancelled cannot complete", StatusCancelled, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			training := &Training{Status: tt.from}
			assert.Equal(t, tt.allowed, training.CanTransitionTo(tt.to))
		})
	}
}

func TestTraining_IsActiveAndTerminal(t *testing.T) {
	assert.True(t, (&Training{Status: StatusScheduled}).IsActive())
	assert.True(t, (&Training{Status: StatusInProgress}).IsActive())
	assert.False(t, (&Training{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Training{Status: StatusCancelled}).IsActive())

	assert.False(t, (&Training{Status: StatusScheduled}).IsTerminal())
	assert.True(t, (&Training{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Training{Status: StatusCancelled}).IsTerminal())
}

func TestTraining_Overlaps(t *testing.T) {
	start := time.Date(2025, 3, 10, 11, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	training := &Training{StartTime: start, EndTime: end}

	// Действительное пересечение
	assert.True(t, training.Overlaps(
		time.Date(2025, 3, 10, 11, 45, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 12, 15, 0, 0, time.UTC),
	))
	assert.True(t, training.Overlaps(
		time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC),
	))

	// Граничащие интервалы пересечением не считаются
	assert.False(t, training.Overlaps(
		time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC),
	))
	assert.False(t, training.Overlaps(
		time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 11, 30, 0, 0, time.UTC),
	))
}

func TestTraining_StartsOn(t *testing.T) {
	training := &Training{
		StartTime: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	assert.True(t, training.StartsOn(time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)))
	assert.False(t, training.StartsOn(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)))
}

func TestTraining_HasFreeSpots(t *testing.T) {
	max := 10

	personal := &Training{MaxSpots: nil, OccupiedSpots: 1}
	assert.True(t, personal.HasFreeSpots())

	group := &Training{MaxSpots: &max, OccupiedSpots: 9}
	assert.True(t, group.HasFreeSpots())

	full := &Training{MaxSpots: &max, OccupiedSpots: 10}
	assert.False(t, full.HasFreeSpots())
}

func TestTraining_MatchesSearch(t *testing.T) {
	training := &Training{
		ID:              1,
		Title:           "Sesión de entrenamiento",
		Status:          StatusScheduled,
		ClientID:        42,
		ClientName:      "María Pérez",
		ClientDocument:  "30123456",
		TrainerID:       7,
		TrainerName:     "Ana",
		TrainerLastName: "Gómez",
		StartTime:       time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	t.Run("empty term matches everything", func(t *testing.T) {
		assert.True(t, training.MatchesSearch(""))
	})

	t.Run("matches by client name case-insensitive", func(t *testing.T) {
		assert.True(t, training.MatchesSearch("maría"))
		assert.True(t, training.MatchesSearch("PÉREZ"))
	})

	t.Run("matches by document", func(t *testing.T) {
		assert.True(t, training.MatchesSearch("30123"))
	})

	t.Run("matches by trainer name", func(t *testing.T) {
		assert.True(t, training.MatchesSearch("ana"))
		assert.True(t, training.MatchesSearch("gómez"))
	})

	t.Run("matches by status", func(t *testing.T) {
		assert.True(t, training.MatchesSearch("programada"))
	})

	t.Run("matches by formatted date", func(t *testing.T) {
		assert.True(t, training.MatchesSearch("10/03/2025"))
		assert.True(t, training.MatchesSearch("10/03"))
	})

	t.Run("matches by formatted time", func(t *testing.T) {
		assert.True(t, training.MatchesSearch("08:00"))
		assert.True(t, training.MatchesSearch("09:00"))
	})

	t.Run("matches by numeric ids", func(t *testing.T) {
		assert.True(t, training.MatchesSearch("42"))
		assert.True(t, training.MatchesSearch("7"))
	})

	t.Run("no match", func(t *testing.T) {
		assert.False(t, training.MatchesSearch("pilates"))
		assert.False(t, training.MatchesSearch("11/03/2025"))
	})
}
