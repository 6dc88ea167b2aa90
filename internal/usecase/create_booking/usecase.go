package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBookingService/internal/availability"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/lock"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	locker       Locker
	txManager    TransactionManager
	metrics      Metrics
	policy       Policy
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	locker Locker,
	txManager TransactionManager,
	metrics Metrics,
	policy Policy,
	logger Logger,
) *UseCase {
	if policy.Location == nil {
		policy.Location = time.Local
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		locker:       locker,
		txManager:    txManager,
		metrics:      metrics,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности повторяется на свежих данных внутри сериализуемой транзакции,
// строка комнаты блокируется FOR UPDATE, а запись в БД условная (уникальный индекс слота)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%s, date=%s, time=%s-%s, organization=%q",
		req.RoomID, req.Date, req.StartTime, req.EndTime, req.Organization)

	// 1. Валидация входных данных
	slot, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.BookingRejected("validation")
		return nil, err
	}

	// 2. Проверяем дату относительно "сегодня" в часовом поясе кампуса
	now := uc.timeProvider.Now().In(uc.policy.Location)
	if err := validateDate(req.Date, uc.policy, types.DateOf(now)); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		uc.metrics.BookingRejected("date")
		return nil, err
	}
	if err := validateStartTime(req.Date, slot, now); err != nil {
		uc.logger.Warn("CreateBooking: start time validation failed: %v", err)
		uc.metrics.BookingRejected("date")
		return nil, err
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = uc.policy.DefaultSource
	}

	// 3. Блокировка комнаты на дату в Redis
	release, err := uc.locker.Acquire(ctx, lock.BookingKey(req.RoomID, req.Date.String()), uc.policy.LockTTL)
	switch {
	case errors.Is(err, lock.ErrLockNotAcquired):
		uc.logger.Warn("CreateBooking: room=%s date=%s is locked by another request", req.RoomID, req.Date)
		uc.metrics.BookingRejected("concurrent")
		return nil, ErrConcurrentRequest
	case err != nil:
		// Redis недоступен: продолжаем, транзакция и уникальный индекс остаются
		uc.logger.Error("CreateBooking: lock unavailable, continuing without it: %v", err)
	default:
		defer release()
	}

	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем строку комнаты
		room, err := uc.roomRepo.LockForUpdate(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to lock room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to lock room: %v", ErrInternal, err)
		}

		// 4.2. Перечитываем бронирования комнаты на дату
		bookings, err := uc.bookingRepo.GetByFilter(txCtx, domain.BookingsFilter{
			RoomID:    ptr.Ptr(room.ID),
			StartDate: ptr.Ptr(req.Date),
			EndDate:   ptr.Ptr(req.Date),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.3. Проверяем доступность слота
		res := availability.Evaluate(room.ID, req.Date, slot, bookings)
		if !res.Available {
			overlapping := availability.EvaluateAll(room.ID, req.Date, slot, bookings)
			uc.logger.Warn("CreateBooking: slot %s in room=%s on %s conflicts with %d booking(s), first id=%s",
				slot, room.ID, req.Date, len(overlapping), res.Conflict.ID)

			suggestion, err := uc.suggestAlternative(txCtx, room, req, slot)
			if err != nil {
				return err
			}

			return &ConflictError{
				ConflictWith: res.Conflict,
				Overlapping:  len(overlapping),
				Suggestion:   suggestion,
			}
		}

		// 4.4. Создаем бронирование
		booking := &domain.Booking{
			ID:           uc.newID(),
			RoomID:       room.ID,
			Date:         req.Date,
			Slot:         slot,
			Organization: strings.TrimSpace(req.Organization),
			Status:       domain.StatusBooked,
			Source:       source,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicate) {
				uc.logger.Warn("CreateBooking: identical slot already stored for room=%s on %s", room.ID, req.Date)
				return fmt.Errorf("%w: identical slot already booked", ErrSlotNotAvailable)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.BookingRejected("conflict")
		}
		return nil, err
	}

	uc.metrics.BookingCreated(result.Source)
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:           result.ID,
		RoomID:       result.RoomID,
		Date:         result.Date,
		Slot:         result.Slot,
		Organization: result.Organization,
		Status:       string(result.Status),
		Source:       result.Source,
		CreatedAt:    result.CreatedAt,
	}, nil
}

// suggestAlternative ищет свободную комнату на тот же слот: сначала в том же здании, затем везде
func (uc *UseCase) suggestAlternative(ctx context.Context, room *domain.Room, req *Request, slot domain.TimeSlot) (*domain.Room, error) {
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list rooms for suggestion: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	dayBookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get day bookings for suggestion: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	suggestion := availability.NewIndex(dayBookings).SuggestPreferBuilding(slot, req.Date, room.ID, room.Building, rooms)
	if suggestion != nil {
		uc.logger.Info("CreateBooking: suggesting room=%s (%s) instead of room=%s", suggestion.ID, suggestion.Building, room.ID)
	} else {
		uc.logger.Info("CreateBooking: no alternative room free for %s on %s", slot, req.Date)
	}

	return suggestion, nil
}
