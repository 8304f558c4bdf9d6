package get_schedule_view

import (
	"context"
	"fmt"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/pkg/ptr"
)

// UseCase use case построения представлений расписания
type UseCase struct {
	trainingRepo TrainingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(trainingRepo TrainingRepository, logger Logger) *UseCase {
	return &UseCase{
		trainingRepo: trainingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения представления расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetScheduleView: user=%d role=%s view=%s date=%s search=%q",
		req.Actor.UserID, req.Actor.Role, req.View, req.Date.Format(domain.DateFormat), req.Search)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetScheduleView: validation failed: %v", err)
		return nil, err
	}

	// 2. Некорректная опорная дата - пустое представление, не ошибка
	if req.Date.IsZero() {
		uc.logger.Warn("GetScheduleView: zero date, returning empty view for user=%d", req.Actor.UserID)
		return emptyResponse(req), nil
	}

	// 3. Определяем период выборки по типу представления
	startDate, endDate := fetchRange(req.View, req.Date)

	// 4. Формируем фильтр и сужаем его по роли пользователя.
	// Представления показывают историю: завершенные и отмененные
	// тренировки остаются видимыми в сетке
	filter := domain.TrainingsFilter{
		StartDate:       ptr.Ptr(startDate),
		EndDate:         ptr.Ptr(endDate),
		TrainerID:       req.TrainerID,
		IncludeInactive: true,
	}
	filter = req.Actor.ScopeFilter(filter)

	// 5. Получаем тренировки за период
	trainings, err := uc.trainingRepo.GetByRange(ctx, filter)
	if err != nil {
		uc.logger.Error("GetScheduleView: failed to get trainings: %v", err)
		return nil, fmt.Errorf("%w: failed to get trainings: %v", ErrInternal, err)
	}

	// 6. Применяем поисковый предикат
	if req.Search != "" {
		trainings = filterBySearch(trainings, req.Search)
	}

	// 7. Строим представление
	resp := &Response{
		View: req.View,
		Date: req.Date.Format(domain.DateFormat),
	}
	switch req.View {
	case ViewDaily:
		resp.Daily = buildDailyView(trainings, req.Date)
	case ViewCalendar:
		resp.Calendar = buildCalendarView(trainings, req.Date)
	}

	uc.logger.Info("GetScheduleView: built %s view over %d trainings for user=%d",
		req.View, len(trainings), req.Actor.UserID)
	return resp, nil
}

// fetchRange возвращает период выборки: день для дневного представления,
// полную видимую сетку (включая хвосты соседних месяцев) для календаря
func fetchRange(view string, date time.Time) (time.Time, time.Time) {
	if view == ViewCalendar {
		gridStart, gridEnd := calendarGridRange(date)
		return gridStart, gridEnd.AddDate(0, 0, -1)
	}
	return date, date
}

func filterBySearch(trainings []*domain.Training, term string) []*domain.Training {
	matched := make([]*domain.Training, 0, len(trainings))
	for _, t := range trainings {
		if t.MatchesSearch(term) {
			matched = append(matched, t)
		}
	}
	return matched
}

func emptyResponse(req *Request) *Response {
	resp := &Response{View: req.View, Date: ""}
	switch req.View {
	case ViewDaily:
		resp.Daily = make(DailyView)
	case ViewCalendar:
		resp.Calendar = []CalendarDay{}
	}
	return resp
}
