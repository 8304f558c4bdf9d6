package book_training

import (
	"fmt"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/pkg/types"
)

// validateRequest проверяет корректность запроса на запись
func validateRequest(req *Request) error {
	if req.Actor.Role != domain.RoleClient {
		return fmt.Errorf("%w: only clients can book through this flow", ErrInvalidInput)
	}
	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}
	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainer id must be positive", ErrInvalidInput)
	}
	if req.Title != nil && len(*req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must not exceed %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description must not exceed %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return validateTimeRange(req.StartTime, req.EndTime)
}

// validateTimeRange проверяет интервал сессии: конец строго позже начала,
// длительность в допустимых пределах, сессия не пересекает полночь
func validateTimeRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidTimeRange)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidTimeRange)
	}

	duration := int(end.Sub(start).Minutes())
	if duration < domain.MinSessionMinutes || duration > domain.MaxSessionMinutes {
		return fmt.Errorf("%w: session must last %d..%d minutes",
			ErrInvalidTimeRange, domain.MinSessionMinutes, domain.MaxSessionMinutes)
	}

	sy, sm, sd := start.UTC().Date()
	ey, em, ed := end.UTC().Date()
	if sy != ey || sm != em || sd != ed {
		return fmt.Errorf("%w: session must start and end on the same day", ErrInvalidTimeRange)
	}

	return nil
}

// minNotice возвращает минимальное уведомление до начала сессии
func minNotice(settings GymSettings) time.Duration {
	return time.Duration(settings.MinBookingNoticeMinutes) * time.Minute
}

// validateGymHours проверяет, что интервал укладывается в часы работы зала
func validateGymHours(start, end time.Time, settings GymSettings) error {
	openTime, err := types.NewTimeStringFromString(settings.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: invalid gym open time: %v", ErrInternal, err)
	}
	closeTime, err := types.NewTimeStringFromString(settings.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: invalid gym close time: %v", ErrInternal, err)
	}

	sessionStart := types.NewTimeString(start.UTC())
	sessionEnd := types.NewTimeString(end.UTC())

	if sessionStart.IsBefore(openTime) || sessionEnd.IsAfter(closeTime) {
		return fmt.Errorf("%w: gym is open %s-%s", ErrOutsideGymHours, openTime, closeTime)
	}

	return nil
}
