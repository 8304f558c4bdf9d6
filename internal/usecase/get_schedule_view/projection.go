package get_schedule_view

import (
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
)

// buildDailyView группирует тренировки дня по часу начала ("HH:MM").
// Тренировки, не относящиеся к запрошенному дню, отбрасываются.
// Порядок внутри часа наследуется от входного среза (start_time ASC).
// Нулевая дата дает пустое представление.
func buildDailyView(trainings []*domain.Training, date time.Time) DailyView {
	view := make(DailyView)
	if date.IsZero() {
		return view
	}

	for _, t := range trainings {
		if !t.StartsOn(date) {
			continue
		}
		hour := t.StartTime.UTC().Format(domain.TimeFormat)
		view[hour] = append(view[hour], fromDomainTraining(t))
	}

	return view
}

// buildCalendarView строит месячную сетку по опорной дате. Сетка
// начинается с воскресенья и дополняется днями соседних месяцев до
// кратности семи, чтобы каждая неделя была полной. Тренировки ячеек
// вне месяца тоже показываются. Нулевая дата дает пустую сетку.
func buildCalendarView(trainings []*domain.Training, date time.Time) []CalendarDay {
	if date.IsZero() {
		return []CalendarDay{}
	}

	gridStart, gridEnd := calendarGridRange(date)
	month := date.Month()

	days := make([]CalendarDay, 0, 42)
	for day := gridStart; day.Before(gridEnd); day = day.AddDate(0, 0, 1) {
		cell := CalendarDay{
			Date:      day.Format(domain.DateFormat),
			InMonth:   day.Month() == month,
			Trainings: make([]*TrainingCard, 0),
		}
		for _, t := range trainings {
			if t.StartsOn(day) {
				cell.Trainings = append(cell.Trainings, fromDomainTraining(t))
			}
		}
		days = append(days, cell)
	}

	return days
}

// calendarGridRange возвращает [первый видимый день, день после последнего
// видимого) для месячной сетки: от воскресенья перед первым числом месяца
// до конца недели, содержащей последнее число.
func calendarGridRange(date time.Time) (time.Time, time.Time) {
	firstOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))

	firstOfNext := firstOfMonth.AddDate(0, 1, 0)
	gridEnd := firstOfNext
	if pad := int(firstOfNext.Weekday()); pad != 0 {
		gridEnd = firstOfNext.AddDate(0, 0, 7-pad)
	}

	return gridStart, gridEnd
}
