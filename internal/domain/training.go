package domain

import (
	"strconv"
	"strings"
	"time"
)

// TrainingStatus represents the lifecycle status of a training session.
// Values are the Spanish wire names consumed by the front end.
type TrainingStatus string

const (
	StatusScheduled  TrainingStatus = "programada"
	StatusInProgress TrainingStatus = "en_curso"
	StatusCompleted  TrainingStatus = "completada"
	StatusCancelled  TrainingStatus = "cancelada"
)

// IsValid reports whether the status is one of the known values.
func (s TrainingStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Training represents a scheduled training session in the system
type Training struct {
	ID          int64
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	Status      TrainingStatus
	ClientID    int64
	TrainerID   int64

	// Optional capacity for group sessions. MaxSpots == nil means a
	// personal session without a spot limit.
	MaxSpots      *int
	OccupiedSpots int

	// Denormalized data for history and free-text search
	ClientName      string
	ClientDocument  string
	TrainerName     string
	TrainerLastName string

	Notes *string

	// IdempotencyKey is set on trainings created through the client
	// booking path and makes repeated submissions of the same request
	// resolve to the same row.
	IdempotencyKey *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the training still occupies its time slot.
func (t *Training) IsActive() bool {
	return t.Status == StatusScheduled || t.Status == StatusInProgress
}

// IsTerminal returns true if the training can no longer change status.
func (t *Training) IsTerminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusCancelled
}

// CanTransitionTo reports whether the status state machine allows moving
// from the current status to next. Transitions never auto-advance on
// wall-clock time, only through an explicit status change.
func (t *Training) CanTransitionTo(next TrainingStatus) bool {
	switch t.Status {
	case StatusScheduled:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// Overlaps reports whether the training interval truly intersects
// [start, end). Touching boundaries do not count as overlap.
func (t *Training) Overlaps(start, end time.Time) bool {
	return t.StartTime.Before(end) && t.EndTime.After(start)
}

// StartsOn reports whether the training starts on the same calendar day as date.
func (t *Training) StartsOn(date time.Time) bool {
	y1, m1, d1 := t.StartTime.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// HasFreeSpots reports whether a capped group session still has room.
// Sessions without a spot limit always have room.
func (t *Training) HasFreeSpots() bool {
	if t.MaxSpots == nil {
		return true
	}
	return t.OccupiedSpots < *t.MaxSpots
}

// MatchesSearch reports whether the free-text term matches the training.
// The match is case-insensitive and succeeds when the term is a substring
// of any of: client name, client document, client id, trainer name,
// trainer last name, trainer id, title, status, or the formatted
// dd/MM/yyyy dates and HH:mm times of the session.
// An empty term matches everything.
func (t *Training) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}

	needle := strings.ToLower(term)

	haystacks := []string{
		t.ClientName,
		t.ClientDocument,
		strconv.FormatInt(t.ClientID, 10),
		t.TrainerName,
		t.TrainerLastName,
		strconv.FormatInt(t.TrainerID, 10),
		t.Title,
		string(t.Status),
		t.StartTime.Format(SearchDateFormat),
		t.EndTime.Format(SearchDateFormat),
		t.StartTime.Format(TimeFormat),
		t.EndTime.Format(TimeFormat),
	}

	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}

	return false
}

// TrainingsFilter фильтр для выборки тренировок
type TrainingsFilter struct {
	StartDate       *time.Time      // Начало периода (включительно)
	EndDate         *time.Time      // Конец периода (включительно)
	TrainerID       *int64          // Фильтр по тренеру
	ClientID        *int64          // Фильтр по клиенту
	Status          *TrainingStatus // Фильтр по статусу
	IncludeInactive bool            // Включать ли отменённые и завершённые тренировки
}
