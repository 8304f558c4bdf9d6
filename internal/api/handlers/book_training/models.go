package book_training

import (
	"fmt"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	bookTraining "github.com/gymsys/GMS-ScheduleService/internal/usecase/book_training"
)

// BookTrainingRequest HTTP-модель запроса на запись к тренеру.
// Ключ идемпотентности защищает от двойной отправки формы.
type BookTrainingRequest struct {
	TrainerID      int64   `json:"id_entrenador"`
	Title          *string `json:"titulo,omitempty"`
	Description    *string `json:"descripcion,omitempty"`
	StartTime      string  `json:"fecha_inicio"`
	EndTime        string  `json:"fecha_fin"`
	Notes          *string `json:"notas,omitempty"`
	IdempotencyKey *string `json:"clave_idempotencia,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookTrainingRequest) ToUseCaseRequest(actor domain.Actor) (*bookTraining.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse fecha_inicio: %w", err)
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parse fecha_fin: %w", err)
	}

	return &bookTraining.Request{
		Actor:          actor,
		TrainerID:      r.TrainerID,
		Title:          r.Title,
		Description:    r.Description,
		StartTime:      start,
		EndTime:        end,
		Notes:          r.Notes,
		IdempotencyKey: r.IdempotencyKey,
	}, nil
}
