package get_schedule_view

import (
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
)

// Типы представлений расписания
const (
	ViewDaily    = "diaria"
	ViewCalendar = "calendario"
)

// Request модель запроса представления расписания
type Request struct {
	Actor     domain.Actor // Пользователь, запрашивающий расписание
	View      string       // Тип представления: diaria | calendario
	Date      time.Time    // Опорная дата (для diaria - день, для calendario - месяц)
	TrainerID *int64       // Опциональный фильтр по тренеру
	Search    string       // Свободный текстовый поиск
}

// Response модель ответа с представлением расписания
type Response struct {
	View     string        `json:"vista"`
	Date     string        `json:"fecha"`
	Daily    DailyView     `json:"vista_diaria,omitempty"`
	Calendar []CalendarDay `json:"vista_calendario,omitempty"`
}

// DailyView дневное представление: тренировки, сгруппированные по часу
// начала в формате "HH:MM". Ключи сериализуются в лексикографическом
// порядке, что для "HH:MM" совпадает с хронологическим.
type DailyView map[string][]*TrainingCard

// CalendarDay ячейка месячной сетки календаря
type CalendarDay struct {
	Date      string          `json:"fecha"`
	InMonth   bool            `json:"del_mes"`
	Trainings []*TrainingCard `json:"entrenamientos"`
}

// TrainingCard карточка тренировки внутри представления
type TrainingCard struct {
	ID              int64   `json:"id"`
	Title           string  `json:"titulo"`
	StartTime       string  `json:"hora_inicio"`
	EndTime         string  `json:"hora_fin"`
	Status          string  `json:"estado"`
	ClientID        int64   `json:"id_cliente"`
	ClientName      string  `json:"nombre_cliente"`
	TrainerID       int64   `json:"id_entrenador"`
	TrainerName     string  `json:"nombre_entrenador"`
	TrainerLastName string  `json:"apellido_entrenador"`
	MaxSpots        *int    `json:"cupo_maximo,omitempty"`
	OccupiedSpots   int     `json:"cupo_ocupado"`
	Notes           *string `json:"notas,omitempty"`
}

// fromDomainTraining конвертирует доменную тренировку в карточку представления
func fromDomainTraining(t *domain.Training) *TrainingCard {
	return &TrainingCard{
		ID:              t.ID,
		Title:           t.Title,
		StartTime:       t.StartTime.UTC().Format(domain.TimeFormat),
		EndTime:         t.EndTime.UTC().Format(domain.TimeFormat),
		Status:          string(t.Status),
		ClientID:        t.ClientID,
		ClientName:      t.ClientName,
		TrainerID:       t.TrainerID,
		TrainerName:     t.TrainerName,
		TrainerLastName: t.TrainerLastName,
		MaxSpots:        t.MaxSpots,
		OccupiedSpots:   t.OccupiedSpots,
		Notes:           t.Notes,
	}
}
