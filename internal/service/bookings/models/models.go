package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// ListByDateRequest запрос на получение бронирований за дату
type ListByDateRequest struct {
	Date   types.Date
	RoomID *string // опционально
	Source *string // опционально
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string  `json:"id"`
	RoomID       string  `json:"roomId"`
	Date         string  `json:"date"`      // "2025-10-15"
	StartTime    string  `json:"startTime"` // "10:00"
	EndTime      string  `json:"endTime"`   // "11:30"
	TimeSlot     string  `json:"timeSlot"`  // "10:00 AM - 11:30 AM"
	Organization string  `json:"organization"`
	Status       string  `json:"status"`
	Source       string  `json:"source"`
	ExternalID   *string `json:"externalId,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		RoomID:       b.RoomID,
		Date:         b.Date.String(),
		StartTime:    b.Slot.Start.String(),
		EndTime:      b.Slot.End.String(),
		TimeSlot:     b.Slot.Label(),
		Organization: b.Organization,
		Status:       string(b.Status),
		Source:       b.Source,
		ExternalID:   b.ExternalID,
	}
	if !b.CreatedAt.IsZero() {
		createdAt := b.CreatedAt
		resp.CreatedAt = &createdAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if dto := FromDomainBooking(b); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}
	return resp
}
