package get_client_slots

import (
	"fmt"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
)

// validateRequest проверяет корректность запроса слотов
func validateRequest(req *Request) error {
	if req.Actor.Role != domain.RoleClient {
		return fmt.Errorf("%w: only clients can request booking slots", ErrInvalidInput)
	}
	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return ErrInvalidDate
	}
	if req.TrainerID != nil && *req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainer id must be positive", ErrInvalidInput)
	}
	return nil
}
