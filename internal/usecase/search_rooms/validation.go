package search_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/availability"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Заданы оба конца: слот должен быть непустым
	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidTimeSlot, req.StartTime, req.EndTime)
	}

	if req.Capacity != "" {
		if _, err := availability.ParseCapacityRange(req.Capacity); err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownCapacityRange, req.Capacity)
		}
	}

	return nil
}
