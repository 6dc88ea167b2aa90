package upsert_room

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

// UpsertRoomRequest HTTP request model, ID берется из URL
type UpsertRoomRequest struct {
	Name     string   `json:"name"`
	Building string   `json:"building"`
	Capacity int      `json:"capacity"`
	Type     string   `json:"type"`
	Features []string `json:"features,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertRoomRequest) ToServiceRequest(roomID string) *models.UpsertRoomRequest {
	return &models.UpsertRoomRequest{
		ID:       roomID,
		Name:     r.Name,
		Building: r.Building,
		Capacity: r.Capacity,
		Type:     r.Type,
		Features: r.Features,
	}
}
