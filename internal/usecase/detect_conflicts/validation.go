package detect_conflicts

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// validateRequest валидирует диапазон дат
func validateRequest(req *Request) error {
	if req.From.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.To.IsZero() {
		req.To = req.From
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidInput, req.To, req.From)
	}

	if req.From.AddDays(domain.MaxConflictRangeDays - 1).Before(req.To) {
		return fmt.Errorf("%w: at most %d days", ErrRangeTooLong, domain.MaxConflictRangeDays)
	}

	return nil
}
