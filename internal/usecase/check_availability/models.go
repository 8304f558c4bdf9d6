package check_availability

import (
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
)

// Причины недоступности, показываемые пользователю
const (
	ReasonInvalidRange    = "el rango horario no es válido"
	ReasonOutsideHours    = "el horario está fuera del horario del gimnasio"
	ReasonTooSoon         = "la sesión comienza demasiado pronto"
	ReasonTrainerOccupied = "el entrenador no tiene cupo disponible en ese horario"
)

// Request модель запроса проверки доступности интервала
type Request struct {
	Actor     domain.Actor // Пользователь, выполняющий проверку
	TrainerID *int64       // Опциональный тренер; без него проверяются только правила зала
	StartTime time.Time    // Начало интервала
	EndTime   time.Time    // Конец интервала
}

// Response модель ответа проверки доступности
type Response struct {
	Available bool     `json:"disponible"`
	Reasons   []string `json:"motivos"`
}
