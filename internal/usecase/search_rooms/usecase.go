package search_rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/availability"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// UseCase use case для поиска свободных комнат
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

// Execute выполняет use case поиска комнат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchRooms: date=%s, time=%s-%s, building=%q, type=%q, capacity=%q",
		req.Date, req.StartTime, req.EndTime, req.Building, req.Type, req.Capacity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем каталог комнат
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("SearchRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования на дату
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("SearchRooms: failed to get bookings for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Фильтруем каталог и проверяем доступность
	criteria := availability.Criteria{
		Date:     req.Date,
		Start:    req.StartTime,
		End:      req.EndTime,
		Building: req.Building,
		Type:     req.Type,
		Capacity: req.Capacity,
	}

	results, err := availability.Search(criteria, rooms, bookings)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidTimeSlot):
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		case errors.Is(err, availability.ErrUnknownCapacityRange):
			return nil, fmt.Errorf("%w: %v", ErrUnknownCapacityRange, err)
		default:
			uc.logger.Error("SearchRooms: search failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	response := &Response{
		Date:                req.Date,
		AvailabilityChecked: criteria.HasTimeRange(),
		Rooms:               make([]RoomAvailability, 0, len(results)),
	}
	for _, r := range results {
		response.Rooms = append(response.Rooms, RoomAvailability{
			Room:        r.Room,
			IsAvailable: r.IsAvailable,
			Conflict:    r.Conflict,
		})
	}

	uc.logger.Info("SearchRooms: matched %d of %d rooms, %d available",
		len(response.Rooms), len(rooms), response.AvailableCount())

	return response, nil
}
