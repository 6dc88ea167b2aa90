package search_rooms

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingModels "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	searchRooms "github.com/m04kA/SMC-RoomBookingService/internal/usecase/search_rooms"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// RoomResult HTTP response model
type RoomResult struct {
	ID          string                         `json:"id"`
	Name        string                         `json:"name"`
	Building    string                         `json:"building"`
	Capacity    int                            `json:"capacity"`
	Type        string                         `json:"type"`
	Features    []string                       `json:"features"`
	IsAvailable bool                           `json:"isAvailable"`
	Conflict    *bookingModels.BookingResponse `json:"conflict,omitempty"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Date                string       `json:"date"`
	AvailabilityChecked bool         `json:"availabilityChecked"`
	AvailableCount      int          `json:"availableCount"`
	Rooms               []RoomResult `json:"rooms"`
}

// ToUseCaseRequest формирует запрос use case из query параметров
func ToUseCaseRequest(dateStr, startStr, endStr, building, roomType, capacity string) (*searchRooms.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	req := &searchRooms.Request{
		Date:     date,
		Building: building,
		Type:     roomType,
		Capacity: capacity,
	}

	if startStr != "" {
		if req.StartTime, err = types.ParseTimeOfDay(startStr); err != nil {
			return nil, err
		}
	}
	if endStr != "" {
		if req.EndTime, err = types.ParseTimeOfDay(endStr); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchRooms.Response) *SearchResponse {
	out := &SearchResponse{
		Date:                resp.Date.String(),
		AvailabilityChecked: resp.AvailabilityChecked,
		AvailableCount:      resp.AvailableCount(),
		Rooms:               make([]RoomResult, 0, len(resp.Rooms)),
	}

	for _, r := range resp.Rooms {
		out.Rooms = append(out.Rooms, fromRoom(r.Room, r.IsAvailable, r.Conflict))
	}

	return out
}

func fromRoom(room *domain.Room, available bool, conflict *domain.Booking) RoomResult {
	features := room.Features
	if features == nil {
		features = []string{}
	}
	return RoomResult{
		ID:          room.ID,
		Name:        room.Name,
		Building:    room.Building,
		Capacity:    room.Capacity,
		Type:        room.Type,
		Features:    features,
		IsAvailable: available,
		Conflict:    bookingModels.FromDomainBooking(conflict),
	}
}
