package models

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Building string   `json:"building"`
	Capacity int      `json:"capacity"`
	Type     string   `json:"type"`
	Features []string `json:"features"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// UpsertRoomRequest запрос на создание или обновление комнаты каталога
type UpsertRoomRequest struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Building string   `json:"building"`
	Capacity int      `json:"capacity"`
	Type     string   `json:"type"`
	Features []string `json:"features"`
}

// ToDomain конвертирует запрос в domain модель
func (r *UpsertRoomRequest) ToDomain() *domain.Room {
	features := r.Features
	if features == nil {
		features = []string{}
	}
	return &domain.Room{
		ID:       r.ID,
		Name:     r.Name,
		Building: r.Building,
		Capacity: r.Capacity,
		Type:     r.Type,
		Features: features,
	}
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	features := r.Features
	if features == nil {
		features = []string{}
	}

	return &RoomResponse{
		ID:       r.ID,
		Name:     r.Name,
		Building: r.Building,
		Capacity: r.Capacity,
		Type:     r.Type,
		Features: features,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}
	for _, r := range rooms {
		if dto := FromDomainRoom(r); dto != nil {
			resp.Rooms = append(resp.Rooms, *dto)
		}
	}
	return resp
}
