package sync_availability

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// UseCase use case для импорта занятости комнат из LibCal
type UseCase struct {
	client       LibCalClient
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	metrics      Metrics
	config       Config
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client LibCalClient,
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	metrics Metrics,
	config Config,
	logger Logger,
) *UseCase {
	if config.Location == nil {
		config.Location = time.Local
	}
	return &UseCase{
		client:       client,
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		metrics:      metrics,
		config:       config,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Run запуск по расписанию (cron)
func (uc *UseCase) Run(ctx context.Context) error {
	_, err := uc.Execute(ctx, &Request{})
	return err
}

// Execute выполняет синхронизацию
// Набор бронирований LibCal в окне заменяется целиком в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		imported := 0
		if resp != nil {
			imported = int(resp.Imported)
		}
		uc.metrics.SyncFinished(err, imported)
	}()

	// 1. Определяем окно синхронизации
	from := req.From
	if from.IsZero() {
		from = types.DateOf(uc.timeProvider.Now().In(uc.config.Location))
	}
	to := from.AddDays(uc.config.WindowDays - 1)

	uc.logger.Info("SyncAvailability: window %s..%s, %d mapped items", from, to, len(uc.config.Items))

	resp = &Response{From: from, To: to}

	// 2. Загружаем слоты по одному дню
	var slots []bookedSlot
	unmapped := make(map[int64]struct{})

	for day := from; !day.After(to); day = day.AddDays(1) {
		raw, err := uc.client.FetchSlots(ctx, day, day.AddDays(1))
		if err != nil {
			uc.logger.Error("SyncAvailability: failed to fetch %s: %v", day, err)
			return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, day, err)
		}
		resp.SlotsReceived += len(raw)

		for _, s := range raw {
			if !s.IsBooked() {
				continue
			}
			resp.BookedSlots++

			roomID, ok := uc.config.Items[strconv.FormatInt(s.ItemID, 10)]
			if !ok {
				resp.SkippedUnmapped++
				if _, seen := unmapped[s.ItemID]; !seen {
					unmapped[s.ItemID] = struct{}{}
					uc.logger.Warn("SyncAvailability: LibCal item %d is not mapped to a room, skipping", s.ItemID)
				}
				continue
			}

			date, start, end, err := s.Parse()
			if err != nil {
				uc.logger.Warn("SyncAvailability: skipping slot of item %d: %v", s.ItemID, err)
				continue
			}
			slot, err := domain.NewTimeSlot(start, end)
			if err != nil {
				uc.logger.Warn("SyncAvailability: skipping slot of item %d: %v", s.ItemID, err)
				continue
			}

			slots = append(slots, bookedSlot{roomID: roomID, itemID: s.ItemID, date: date, slot: slot})
		}
	}

	// 3. Отбрасываем комнаты, которых нет в каталоге (внешний ключ)
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("SyncAvailability: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}
	known := domain.RoomsByID(rooms)

	// 4. Склеиваем смежные слоты в бронирования
	merged := mergeSlots(slots)
	bookings := make([]*domain.Booking, 0, len(merged))
	for _, s := range merged {
		if _, ok := known[s.roomID]; !ok {
			uc.logger.Warn("SyncAvailability: room %s is mapped but missing from catalog, skipping", s.roomID)
			continue
		}
		bookings = append(bookings, &domain.Booking{
			ID:           uc.newID(),
			RoomID:       s.roomID,
			Date:         s.date,
			Slot:         s.slot,
			Organization: ImportedOrganization,
			Status:       domain.StatusBooked,
			Source:       domain.SourceLibCal,
			ExternalID:   ptr.Ptr(externalID(s)),
		})
	}

	// 5. Заменяем набор LibCal в окне одной транзакцией
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		deleted, inserted, err := uc.bookingRepo.ReplaceBySource(txCtx, domain.SourceLibCal, from, to, bookings)
		if err != nil {
			return err
		}
		resp.Deleted = deleted
		resp.Imported = inserted
		return nil
	})
	if err != nil {
		uc.logger.Error("SyncAvailability: failed to store bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to store bookings: %v", ErrInternal, err)
	}

	resp.SkippedDuplicates = int64(len(bookings)) - resp.Imported
	if resp.SkippedDuplicates > 0 {
		uc.logger.Warn("SyncAvailability: %d merged bookings skipped as duplicate LibCal slots", resp.SkippedDuplicates)
	}

	uc.logger.Info("SyncAvailability: %d slots received, %d booked, %d unmapped, %d imported, %d removed",
		resp.SlotsReceived, resp.BookedSlots, resp.SkippedUnmapped, resp.Imported, resp.Deleted)

	return resp, nil
}
