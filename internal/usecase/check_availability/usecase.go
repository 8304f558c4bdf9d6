package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/pkg/ptr"
	"github.com/gymsys/GMS-ScheduleService/pkg/types"
)

// UseCase use case проверки доступности временного интервала.
// Нарушения правил не ошибки, а причины в ответе: форма показывает
// их рядом с полем, не прерывая заполнение.
type UseCase struct {
	trainingRepo TrainingRepository
	timeProvider TimeProvider
	settings     GymSettings
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(trainingRepo TrainingRepository, settings GymSettings, logger Logger) *UseCase {
	return &UseCase{
		trainingRepo: trainingRepo,
		timeProvider: &RealTimeProvider{},
		settings:     settings,
		logger:       logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: user=%d, trainer=%v, start=%s",
		req.Actor.UserID, req.TrainerID, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat))

	reasons := make([]string, 0)

	// 1. Корректность интервала. Некорректный интервал делает остальные
	// проверки бессмысленными
	if !validTimeRange(req.StartTime, req.EndTime) {
		uc.logger.Warn("CheckAvailability: invalid time range for user=%d", req.Actor.UserID)
		return &Response{Available: false, Reasons: []string{ReasonInvalidRange}}, nil
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Часы работы зала
	if !withinGymHours(req.StartTime, req.EndTime, uc.settings) {
		reasons = append(reasons, ReasonOutsideHours)
	}

	// 4. Минимальное уведомление до начала
	notice := time.Duration(uc.settings.MinBookingNoticeMinutes) * time.Minute
	if req.StartTime.Before(now.Add(notice)) {
		reasons = append(reasons, ReasonTooSoon)
	}

	// 5. Конфликты у тренера, если тренер указан
	if req.TrainerID != nil {
		day := req.StartTime.UTC()
		sameDay, err := uc.trainingRepo.GetByRange(ctx, domain.TrainingsFilter{
			StartDate: ptr.Ptr(day),
			EndDate:   ptr.Ptr(day),
			TrainerID: req.TrainerID,
		})
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get trainer schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to get trainer schedule: %v", ErrInternal, err)
		}

		overlapping := 0
		for _, t := range sameDay {
			if t.IsActive() && t.Overlaps(req.StartTime, req.EndTime) {
				overlapping++
			}
		}
		if overlapping >= uc.settings.MaxConcurrentPerTrainer {
			reasons = append(reasons, ReasonTrainerOccupied)
		}
	}

	available := len(reasons) == 0
	uc.logger.Info("CheckAvailability: user=%d available=%v reasons=%d", req.Actor.UserID, available, len(reasons))
	return &Response{Available: available, Reasons: reasons}, nil
}

func validTimeRange(start, end time.Time) bool {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return false
	}
	duration := int(end.Sub(start).Minutes())
	return duration >= domain.MinSessionMinutes && duration <= domain.MaxSessionMinutes
}

func withinGymHours(start, end time.Time, settings GymSettings) bool {
	openTime, err := types.NewTimeStringFromString(settings.OpenTime)
	if err != nil {
		return false
	}
	closeTime, err := types.NewTimeStringFromString(settings.CloseTime)
	if err != nil {
		return false
	}

	sessionStart := types.NewTimeString(start.UTC())
	sessionEnd := types.NewTimeString(end.UTC())
	return !sessionStart.IsBefore(openTime) && !sessionEnd.IsAfter(closeTime)
}
