package get_schedule_view

import "fmt"

// validateRequest проверяет корректность запроса представления
func validateRequest(req *Request) error {
	if req.View != ViewDaily && req.View != ViewCalendar {
		return fmt.Errorf("%w: %q", ErrInvalidView, req.View)
	}
	if !req.Actor.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Actor.Role)
	}
	return nil
}
