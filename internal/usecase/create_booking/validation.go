package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает слот
func validateRequest(req *Request) (domain.TimeSlot, error) {
	if strings.TrimSpace(req.RoomID) == "" {
		return domain.TimeSlot{}, fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return domain.TimeSlot{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return domain.TimeSlot{}, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	organization := strings.TrimSpace(req.Organization)
	if organization == "" {
		return domain.TimeSlot{}, fmt.Errorf("%w: organization is required", ErrInvalidInput)
	}
	if len(organization) > domain.MaxOrganizationLength {
		return domain.TimeSlot{}, fmt.Errorf("%w: organization is longer than %d characters", ErrInvalidInput, domain.MaxOrganizationLength)
	}

	slot, err := domain.NewTimeSlot(req.StartTime, req.EndTime)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	return slot, nil
}

// validateDate проверяет окно семестра (включительно) и что дата не в прошлом
func validateDate(date types.Date, policy Policy, today types.Date) error {
	if date.Before(policy.SemesterStart) || date.After(policy.SemesterEnd) {
		return fmt.Errorf("%w: bookings are only allowed between %s and %s",
			ErrOutsideSemester, policy.SemesterStart, policy.SemesterEnd)
	}

	if date.Before(today) {
		return ErrDateInPast
	}

	return nil
}

// validateStartTime запрещает бронировать уже начавшийся слот на сегодня
func validateStartTime(date types.Date, slot domain.TimeSlot, now time.Time) error {
	if date != types.DateOf(now) {
		return nil
	}

	if slot.Start.IsBefore(types.TimeOfDayFromTime(now)) {
		return fmt.Errorf("%w: %s is before current time %s",
			ErrStartInPast, slot.Start, types.TimeOfDayFromTime(now))
	}

	return nil
}
