package get_schedule

import (
	bookingModels "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	getSchedule "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_schedule"
)

// ScheduleBooking бронирование в сетке с данными комнаты
type ScheduleBooking struct {
	bookingModels.BookingResponse
	RoomName     string `json:"room_name"`
	Building     string `json:"building"`
	RoomCapacity int    `json:"room_capacity"`
}

// ScheduleResponse HTTP модель сетки
type ScheduleResponse struct {
	Date      string            `json:"date"`
	Rooms     []string          `json:"rooms"`
	TimeSlots []string          `json:"timeSlots"`
	Bookings  []ScheduleBooking `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		Date:      resp.Date.String(),
		Rooms:     resp.Rooms,
		TimeSlots: resp.TimeSlots,
		Bookings:  make([]ScheduleBooking, 0, len(resp.Bookings)),
	}

	for _, b := range resp.Bookings {
		out.Bookings = append(out.Bookings, ScheduleBooking{
			BookingResponse: *bookingModels.FromDomainBooking(b.Booking),
			RoomName:        b.RoomName,
			Building:        b.Building,
			RoomCapacity:    b.RoomCapacity,
		})
	}

	return out
}
