package get_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// UseCase use case для построения сетки расписания на день
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Execute выполняет use case построения сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSchedule: date=%s, allRooms=%t", req.Date, req.AllRooms)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetSchedule: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем бронирования дня
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("GetSchedule: failed to get bookings for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Получаем каталог комнат
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 4. Строим сетку
	enriched := enrich(bookings, domain.RoomsByID(rooms))
	startHour, endHour := hourBounds(bookings)

	response := &Response{
		Date:      req.Date,
		Rooms:     roomNames(enriched, rooms, req.AllRooms),
		TimeSlots: hourLabels(startHour, endHour),
		StartHour: startHour,
		EndHour:   endHour,
		Bookings:  enriched,
	}

	uc.logger.Info("GetSchedule: %d rooms, %d bookings, hours %d-%d",
		len(response.Rooms), len(response.Bookings), startHour, endHour)

	return response, nil
}
