package create_training

import (
	"fmt"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	createTraining "github.com/gymsys/GMS-ScheduleService/internal/usecase/create_training"
)

// CreateTrainingRequest HTTP-модель запроса на создание тренировки
type CreateTrainingRequest struct {
	Title       *string `json:"titulo,omitempty"`
	Description *string `json:"descripcion,omitempty"`
	StartTime   string  `json:"fecha_inicio"`
	EndTime     string  `json:"fecha_fin"`
	ClientID    int64   `json:"id_cliente"`
	TrainerID   int64   `json:"id_entrenador,omitempty"`
	MaxSpots    *int    `json:"cupo_maximo,omitempty"`
	Notes       *string `json:"notas,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTrainingRequest) ToUseCaseRequest(actor domain.Actor) (*createTraining.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse fecha_inicio: %w", err)
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parse fecha_fin: %w", err)
	}

	return &createTraining.Request{
		Actor:       actor,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   start,
		EndTime:     end,
		ClientID:    r.ClientID,
		TrainerID:   r.TrainerID,
		MaxSpots:    r.MaxSpots,
		Notes:       r.Notes,
	}, nil
}
