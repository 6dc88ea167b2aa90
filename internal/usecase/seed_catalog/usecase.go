package seed_catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// UseCase загрузка каталога комнат и исходных бронирований
type UseCase struct {
	roomRepo      RoomRepository
	bookingRepo   BookingRepository
	txManager     TransactionManager
	defaultSource string
	newID         func() string
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	defaultSource string,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:      roomRepo,
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		defaultSource: defaultSource,
		newID:         uuid.NewString,
		logger:        logger,
	}
}

// Execute записывает комнаты и бронирования одной транзакцией
// Повторный запуск безопасен: комнаты перезаписываются, занятые слоты пропускаются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Комнаты проверяем заранее: битый каталог не загружаем частично
	rooms := make([]*domain.Room, 0, len(req.Rooms))
	known := make(map[string]struct{}, len(req.Rooms))
	for i, rec := range req.Rooms {
		room, err := toRoom(rec)
		if err != nil {
			uc.logger.Warn("SeedCatalog: invalid room #%d: %v", i, err)
			return nil, err
		}
		rooms = append(rooms, room)
		known[room.ID] = struct{}{}
	}

	// 2. Бронирования: некорректные пропускаем с предупреждением
	bookings := make([]*domain.Booking, 0, len(req.Reservations))
	resp := &Response{}
	for i, rec := range req.Reservations {
		booking, err := uc.toBooking(rec)
		if err != nil {
			uc.logger.Warn("SeedCatalog: skip reservation #%d (room=%s, date=%s): %v", i, rec.RoomID, rec.Date, err)
			resp.Skipped++
			continue
		}
		if _, ok := known[booking.RoomID]; !ok {
			uc.logger.Warn("SeedCatalog: skip reservation #%d: room %s is not in the catalog", i, rec.RoomID)
			resp.Skipped++
			continue
		}
		bookings = append(bookings, booking)
	}

	// 3. Запись
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		for _, room := range rooms {
			if err := uc.roomRepo.Upsert(ctx, room); err != nil {
				return fmt.Errorf("upsert room %s: %w", room.ID, err)
			}
		}

		for _, booking := range bookings {
			if _, err := uc.bookingRepo.Create(ctx, booking); err != nil {
				if errors.Is(err, bookingRepo.ErrDuplicate) {
					resp.Duplicates++
					continue
				}
				return fmt.Errorf("create booking %s/%s: %w", booking.RoomID, booking.Date, err)
			}
			resp.Bookings++
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("SeedCatalog: failed to write catalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp.Rooms = len(rooms)

	uc.logger.Info("SeedCatalog: rooms=%d, bookings=%d, duplicates=%d, skipped=%d",
		resp.Rooms, resp.Bookings, resp.Duplicates, resp.Skipped)

	return resp, nil
}

func toRoom(rec RoomRecord) (*domain.Room, error) {
	if rec.ID == "" || rec.Name == "" {
		return nil, fmt.Errorf("%w: room id and name are required", ErrInvalidInput)
	}
	if rec.Capacity <= 0 {
		return nil, fmt.Errorf("%w: room %s: capacity must be positive", ErrInvalidInput, rec.ID)
	}
	features := rec.Features
	if features == nil {
		features = []string{}
	}
	return &domain.Room{
		ID:       rec.ID,
		Name:     rec.Name,
		Building: rec.Building,
		Capacity: rec.Capacity,
		Type:     rec.Type,
		Features: features,
	}, nil
}

func (uc *UseCase) toBooking(rec ReservationRecord) (*domain.Booking, error) {
	if rec.Status != "" && domain.BookingStatus(rec.Status) != domain.StatusBooked {
		return nil, fmt.Errorf("status %q is not active", rec.Status)
	}
	date, err := types.ParseDate(rec.Date)
	if err != nil {
		return nil, err
	}
	slot, err := domain.ParseSlotLabel(rec.TimeSlot)
	if err != nil {
		return nil, err
	}
	source := rec.SystemSource
	if source == "" {
		source = uc.defaultSource
	}
	return &domain.Booking{
		ID:           uc.newID(),
		RoomID:       rec.RoomID,
		Date:         date,
		Slot:         slot,
		Organization: rec.Organization,
		Status:       domain.StatusBooked,
		Source:       source,
	}, nil
}
