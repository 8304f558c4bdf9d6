package get_client_slots

import (
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/internal/integrations/staffservice"
	"github.com/gymsys/GMS-ScheduleService/pkg/types"
)

// generateTimeSlots генерирует список всех возможных временных слотов на день.
// Слоты генерируются с открытия зала с фиксированным шагом slotDuration,
// затем фильтруются с учетом текущего времени и минимального уведомления
func generateTimeSlots(
	settings GymSettings,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	// Прошедшие даты слотов не имеют
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	openTime, err := types.NewTimeStringFromString(settings.OpenTime)
	if err != nil {
		return nil, err
	}
	closeTime, err := types.NewTimeStringFromString(settings.CloseTime)
	if err != nil {
		return nil, err
	}

	// Шаг 1: генерируем ВСЕ слоты от открытия до закрытия с фиксированным шагом
	allSlots := make([]types.TimeString, 0)
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		slotEnd, err := currentSlot.AddMinutes(settings.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot, err = currentSlot.AddMinutes(settings.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
	}

	// Шаг 2: если дата не сегодня - возвращаем все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: для сегодняшней даты отбрасываем слоты, начинающиеся раньше
	// минимально допустимого времени
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(settings.MinBookingNoticeMinutes)
	if err != nil {
		return nil, err
	}

	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		if !slot.IsBefore(minAllowedTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// buildSlots считает для каждого слота свободных тренеров и общее число мест.
// Тренер свободен в слоте, пока число его активных сессий, пересекающих слот,
// меньше maxConcurrent
func buildSlots(
	slots []types.TimeString,
	date time.Time,
	settings GymSettings,
	roster []staffservice.Trainer,
	trainings []*domain.Training,
) []Slot {
	result := make([]Slot, len(slots))

	for i, slotStart := range slots {
		start, end := slotInterval(slotStart, settings.SlotDurationMinutes, date)

		availableTrainers := make([]int64, 0, len(roster))
		availableSpots := 0
		for _, trainer := range roster {
			overlapping := countOverlappingTrainings(start, end, trainer.ID, trainings)
			free := settings.MaxConcurrentPerTrainer - overlapping
			if free > 0 {
				availableTrainers = append(availableTrainers, trainer.ID)
				availableSpots += free
			}
		}

		result[i] = Slot{
			StartTime:         slotStart,
			DurationMinutes:   settings.SlotDurationMinutes,
			AvailableSpots:    availableSpots,
			TotalSpots:        settings.MaxConcurrentPerTrainer * len(roster),
			AvailableTrainers: availableTrainers,
		}
	}

	return result
}

// countOverlappingTrainings подсчитывает активные сессии тренера,
// пересекающие интервал слота. Граничащие интервалы пересечением
// не считаются: используются строгие неравенства
func countOverlappingTrainings(start, end time.Time, trainerID int64, trainings []*domain.Training) int {
	count := 0
	for _, t := range trainings {
		if t.TrainerID != trainerID || !t.IsActive() {
			continue
		}
		if t.Overlaps(start, end) {
			count++
		}
	}
	return count
}

// slotInterval переводит слот "HH:MM" в интервал [start, end) на указанную дату
func slotInterval(slotStart types.TimeString, durationMinutes int, date time.Time) (time.Time, time.Time) {
	minutes, err := slotStart.Minutes()
	if err != nil {
		minutes = 0
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(minutes) * time.Minute)
	return start, start.Add(time.Duration(durationMinutes) * time.Minute)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
