package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingModels "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	roomModels "github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID       string `json:"roomId"`
	Date         string `json:"date"`      // "2025-10-15"
	StartTime    string `json:"startTime"` // "10:00"
	EndTime      string `json:"endTime"`   // "11:30"
	Organization string `json:"organization"`
	SystemSource string `json:"systemSource,omitempty"`
}

// ConflictResponse тело ответа 409
type ConflictResponse struct {
	Message      string                         `json:"message"`
	ConflictWith *bookingModels.BookingResponse `json:"conflictWith,omitempty"`
	Overlapping  int                            `json:"overlapping"`
	Suggestion   *roomModels.RoomResponse       `json:"suggestion"`
}

// errMissingFields отсутствуют обязательные поля
var errMissingFields = errors.New("missing required fields: roomId, date, startTime, endTime, organization")

type parseError struct {
	field string
	err   error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.field, e.err)
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	if r.RoomID == "" || r.Date == "" || r.StartTime == "" || r.EndTime == "" || r.Organization == "" {
		return nil, errMissingFields
	}

	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, &parseError{field: "date", err: err}
	}

	startTime, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, &parseError{field: "startTime", err: err}
	}

	endTime, err := types.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return nil, &parseError{field: "endTime", err: err}
	}

	return &createBooking.Request{
		RoomID:       r.RoomID,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Organization: r.Organization,
		Source:       r.SystemSource,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *bookingModels.BookingResponse {
	return bookingModels.FromDomainBooking(&domain.Booking{
		ID:           resp.ID,
		RoomID:       resp.RoomID,
		Date:         resp.Date,
		Slot:         resp.Slot,
		Organization: resp.Organization,
		Status:       domain.BookingStatus(resp.Status),
		Source:       resp.Source,
		CreatedAt:    resp.CreatedAt,
	})
}

// FromConflictError формирует тело ответа 409
func FromConflictError(message string, err *createBooking.ConflictError) *ConflictResponse {
	return &ConflictResponse{
		Message:      message,
		ConflictWith: bookingModels.FromDomainBooking(err.ConflictWith),
		Overlapping:  err.Overlapping,
		Suggestion:   roomModels.FromDomainRoom(err.Suggestion),
	}
}
