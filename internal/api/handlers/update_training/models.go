package update_training

import (
	"fmt"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/internal/service/trainings/models"
)

// UpdateTrainingRequest HTTP-модель частичного обновления тренировки.
// Отсутствующие поля не изменяются.
type UpdateTrainingRequest struct {
	Title       *string `json:"titulo,omitempty"`
	Description *string `json:"descripcion,omitempty"`
	StartTime   *string `json:"fecha_inicio,omitempty"`
	EndTime     *string `json:"fecha_fin,omitempty"`
	MaxSpots    *int    `json:"cupo_maximo,omitempty"`
	Notes       *string `json:"notas,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateTrainingRequest) ToServiceRequest(actor domain.Actor) (*models.UpdateTrainingRequest, error) {
	req := &models.UpdateTrainingRequest{
		Actor:       actor,
		Title:       r.Title,
		Description: r.Description,
		MaxSpots:    r.MaxSpots,
		Notes:       r.Notes,
	}

	if r.StartTime != nil {
		start, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("parse fecha_inicio: %w", err)
		}
		req.StartTime = &start
	}

	if r.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("parse fecha_fin: %w", err)
		}
		req.EndTime = &end
	}

	return req, nil
}
