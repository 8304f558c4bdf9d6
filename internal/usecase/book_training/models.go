package book_training

import (
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
)

// Request модель запроса на запись клиента к тренеру
type Request struct {
	Actor          domain.Actor // Клиент, выполняющий запись
	TrainerID      int64        // ID тренера
	Title          *string      // Название; пустое заменяется названием по умолчанию
	Description    *string      // Опциональное описание
	StartTime      time.Time    // Начало сессии
	EndTime        time.Time    // Конец сессии
	Notes          *string      // Опциональные заметки
	IdempotencyKey *string      // Ключ идемпотентности повторной отправки формы
}

// Response модель ответа с созданной тренировкой
type Response struct {
	ID              int64   `json:"id"`
	Title           string  `json:"titulo"`
	Description     *string `json:"descripcion,omitempty"`
	StartTime       string  `json:"fecha_inicio"`
	EndTime         string  `json:"fecha_fin"`
	Status          string  `json:"estado"`
	ClientID        int64   `json:"id_cliente"`
	ClientName      string  `json:"nombre_cliente"`
	TrainerID       int64   `json:"id_entrenador"`
	TrainerName     string  `json:"nombre_entrenador"`
	TrainerLastName string  `json:"apellido_entrenador"`
	Notes           *string `json:"notas,omitempty"`
	AlreadyExisted  bool    `json:"ya_existia"`
}

// fromDomainTraining конвертирует доменную тренировку в ответ
func fromDomainTraining(t *domain.Training, alreadyExisted bool) *Response {
	return &Response{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		StartTime:       t.StartTime.UTC().Format(time.RFC3339),
		EndTime:         t.EndTime.UTC().Format(time.RFC3339),
		Status:          string(t.Status),
		ClientID:        t.ClientID,
		ClientName:      t.ClientName,
		TrainerID:       t.TrainerID,
		TrainerName:     t.TrainerName,
		TrainerLastName: t.TrainerLastName,
		Notes:           t.Notes,
		AlreadyExisted:  alreadyExisted,
	}
}
