package detect_conflicts

import (
	bookingModels "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	roomModels "github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
	detectConflicts "github.com/m04kA/SMC-RoomBookingService/internal/usecase/detect_conflicts"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// ConflictResponse HTTP модель конфликта
type ConflictResponse struct {
	RoomID         string                        `json:"roomId"`
	RoomName       string                        `json:"roomName,omitempty"`
	Building       string                        `json:"building,omitempty"`
	Date           string                        `json:"date"`
	Type           string                        `json:"type"`           // "Cross-System Conflict" или "Double Booking"
	Classification string                        `json:"classification"` // "cross-system" или "same-system"
	Booking1       bookingModels.BookingResponse `json:"booking1"`
	Booking2       bookingModels.BookingResponse `json:"booking2"`
	Suggestion     *roomModels.RoomResponse      `json:"suggestion"`
}

// ReportResponse HTTP модель отчета
type ReportResponse struct {
	From        string             `json:"from"`
	To          string             `json:"to"`
	Total       int                `json:"total"`
	CrossSystem int                `json:"crossSystem"`
	SameSystem  int                `json:"sameSystem"`
	Conflicts   []ConflictResponse `json:"conflicts"`
}

// ToUseCaseRequest разбирает ?date= или ?from=&to=
func ToUseCaseRequest(dateStr, fromStr, toStr string) (*detectConflicts.Request, error) {
	if dateStr != "" {
		date, err := types.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		return &detectConflicts.Request{From: date, To: date}, nil
	}

	req := &detectConflicts.Request{}
	var err error
	if fromStr != "" {
		if req.From, err = types.ParseDate(fromStr); err != nil {
			return nil, err
		}
	}
	if toStr != "" {
		if req.To, err = types.ParseDate(toStr); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *detectConflicts.Response) *ReportResponse {
	out := &ReportResponse{
		From:        resp.From.String(),
		To:          resp.To.String(),
		Total:       resp.Total,
		CrossSystem: resp.CrossSystem,
		SameSystem:  resp.SameSystem,
		Conflicts:   make([]ConflictResponse, 0, len(resp.Conflicts)),
	}

	for _, c := range resp.Conflicts {
		item := ConflictResponse{
			RoomID:         c.RoomID,
			Date:           c.Date.String(),
			Type:           c.Classification.Label(),
			Classification: string(c.Classification),
			Booking1:       *bookingModels.FromDomainBooking(c.Booking1),
			Booking2:       *bookingModels.FromDomainBooking(c.Booking2),
			Suggestion:     roomModels.FromDomainRoom(c.Suggestion),
		}
		if c.Room != nil {
			item.RoomName = c.Room.Name
			item.Building = c.Room.Building
		}
		out.Conflicts = append(out.Conflicts, item)
	}

	return out
}
