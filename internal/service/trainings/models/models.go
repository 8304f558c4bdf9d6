package models

import (
	"errors"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid training status")
)

// Request модели

// ListTrainingsRequest запрос на получение списка тренировок
type ListTrainingsRequest struct {
	Actor           domain.Actor
	StartDate       *time.Time
	EndDate         *time.Time
	TrainerID       *int64
	ClientID        *int64
	Status          *string
	Search          string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в domain фильтр.
// Видимость по роли применяется поверх через Actor.ScopeFilter.
func (r *ListTrainingsRequest) ToDomainFilter() (domain.TrainingsFilter, error) {
	filter := domain.TrainingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		TrainerID:       r.TrainerID,
		ClientID:        r.ClientID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainTrainingStatus(*r.Status)
		if err != nil {
			return domain.TrainingsFilter{}, err
		}
		filter.Status = &status
	}

	return r.Actor.ScopeFilter(filter), nil
}

// UpdateTrainingRequest частичное обновление тренировки.
// nil-поля не изменяются.
type UpdateTrainingRequest struct {
	Actor       domain.Actor
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	MaxSpots    *int
	Notes       *string
}

// UpdateStatusRequest запрос на смену статуса тренировки
type UpdateStatusRequest struct {
	Actor  domain.Actor
	Status string
}

// Response модели

// TrainingResponse модель тренировки в ответах API.
// Имена полей — испанские wire-имена, даты ISO-8601 в UTC.
type TrainingResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"titulo"`
	Description     *string `json:"descripcion,omitempty"`
	StartTime       string  `json:"fecha_inicio"`
	EndTime         string  `json:"fecha_fin"`
	Status          string  `json:"estado"`
	ClientID        int64   `json:"id_cliente"`
	ClientName      string  `json:"nombre_cliente"`
	ClientDocument  string  `json:"documento_cliente"`
	TrainerID       int64   `json:"id_entrenador"`
	TrainerName     string  `json:"nombre_entrenador"`
	TrainerLastName string  `json:"apellido_entrenador"`
	MaxSpots        *int    `json:"cupo_maximo,omitempty"`
	OccupiedSpots   int     `json:"cupo_ocupado"`
	Notes           *string `json:"notas,omitempty"`
	CreatedAt       string  `json:"creado_en"`
	UpdatedAt       string  `json:"actualizado_en"`
}

// TrainingListResponse список тренировок
type TrainingListResponse struct {
	Trainings []*TrainingResponse `json:"entrenamientos"`
}

// FromDomainTraining конвертирует domain тренировку в модель ответа
func FromDomainTraining(t *domain.Training) *TrainingResponse {
	return &TrainingResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		StartTime:       t.StartTime.UTC().Format(time.RFC3339),
		EndTime:         t.EndTime.UTC().Format(time.RFC3339),
		Status:          string(t.Status),
		ClientID:        t.ClientID,
		ClientName:      t.ClientName,
		ClientDocument:  t.ClientDocument,
		TrainerID:       t.TrainerID,
		TrainerName:     t.TrainerName,
		TrainerLastName: t.TrainerLastName,
		MaxSpots:        t.MaxSpots,
		OccupiedSpots:   t.OccupiedSpots,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainTrainingList конвертирует слайс domain тренировок в модель ответа
func FromDomainTrainingList(trainings []*domain.Training) *TrainingListResponse {
	result := make([]*TrainingResponse, len(trainings))
	for i, t := range trainings {
		result[i] = FromDomainTraining(t)
	}
	return &TrainingListResponse{Trainings: result}
}

// ToDomainTrainingStatus валидирует и конвертирует строковый статус
func ToDomainTrainingStatus(s string) (domain.TrainingStatus, error) {
	status := domain.TrainingStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
