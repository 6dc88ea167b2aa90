package detect_conflicts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/availability"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// sweepThreshold начиная с этого числа бронирований используется sweep-детектор
const sweepThreshold = 64

// UseCase use case для поиска конфликтов бронирований
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case поиска конфликтов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DetectConflicts: from=%s, to=%s", req.From, req.To)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DetectConflicts: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирования за диапазон
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(req.From),
		EndDate:   ptr.Ptr(req.To),
	})
	if err != nil {
		uc.logger.Error("DetectConflicts: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Получаем каталог для имен комнат и подбора альтернатив
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("DetectConflicts: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 4. Ищем пересечения
	var conflicts []domain.Conflict
	if len(bookings) >= sweepThreshold {
		conflicts = availability.DetectConflictsSweep(bookings)
	} else {
		conflicts = availability.DetectConflicts(bookings)
	}

	// 5. Подбираем альтернативу для каждого конфликта
	roomsByID := domain.RoomsByID(rooms)
	idx := availability.NewIndex(bookings)

	response := &Response{
		From:      req.From,
		To:        req.To,
		Conflicts: make([]ConflictReport, 0, len(conflicts)),
	}

	for _, c := range conflicts {
		room := roomsByID[c.RoomID]
		building := ""
		if room != nil {
			building = room.Building
		}

		report := ConflictReport{
			Room:           room,
			RoomID:         c.RoomID,
			Date:           c.Booking1.Date,
			Booking1:       c.Booking1,
			Booking2:       c.Booking2,
			Classification: c.Classification,
			Suggestion:     idx.SuggestPreferBuilding(c.Booking1.Slot, c.Booking1.Date, c.RoomID, building, rooms),
		}
		response.Conflicts = append(response.Conflicts, report)

		if c.Classification == domain.CrossSystem {
			response.CrossSystem++
		} else {
			response.SameSystem++
		}
		uc.metrics.ConflictDetected(string(c.Classification))
	}
	response.Total = len(response.Conflicts)

	if response.Total > 0 {
		uc.logger.Warn("DetectConflicts: found %d conflicts (%d cross-system, %d same-system) in %d bookings",
			response.Total, response.CrossSystem, response.SameSystem, len(bookings))
	} else {
		uc.logger.Info("DetectConflicts: no conflicts in %d bookings", len(bookings))
	}

	return response, nil
}
