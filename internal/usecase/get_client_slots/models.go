package get_client_slots

import (
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/pkg/types"
)

// Request модель запроса доступных слотов для записи
type Request struct {
	Actor     domain.Actor // Клиент, запрашивающий слоты
	Date      time.Time    // Дата, на которую запрашиваются слоты
	TrainerID *int64       // Опциональный тренер; без него слоты считаются по всему ростеру
}

// Response модель ответа со списком слотов
type Response struct {
	Date     string `json:"fecha"`
	Slots    []Slot `json:"horarios"`
	Degraded bool   `json:"degradado"`
}

// Slot временной слот с доступными тренерами
type Slot struct {
	StartTime         types.TimeString `json:"hora_inicio"`
	DurationMinutes   int              `json:"duracion_minutos"`
	AvailableSpots    int              `json:"cupos_disponibles"`
	TotalSpots        int              `json:"cupos_totales"`
	AvailableTrainers []int64          `json:"entrenadores_disponibles"`
}
