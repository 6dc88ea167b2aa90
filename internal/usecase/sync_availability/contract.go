package sync_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/libcal"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// LibCalClient клиент сетки доступности LibCal
type LibCalClient interface {
	FetchSlots(ctx context.Context, start, end types.Date) ([]libcal.Slot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ReplaceBySource(ctx context.Context, source string, from, to types.Date, bookings []*domain.Booking) (int64, int64, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics метрики синхронизации
type Metrics interface {
	SyncFinished(err error, imported int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
