package list_bookings

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// ErrMissingDate возвращается без параметра date
var ErrMissingDate = errors.New("date query parameter is required")

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(dateStr, roomIDStr, sourceStr string) (*models.ListByDateRequest, error) {
	if strings.TrimSpace(dateStr) == "" {
		return nil, ErrMissingDate
	}

	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	req := &models.ListByDateRequest{Date: date}
	if roomID := strings.TrimSpace(roomIDStr); roomID != "" {
		req.RoomID = &roomID
	}
	if source := strings.TrimSpace(sourceStr); source != "" {
		req.Source = &source
	}

	return req, nil
}
