package sync_libcal

import (
	"context"

	syncAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/sync_availability"
)

type SyncUseCase interface {
	Execute(ctx context.Context, req *syncAvailability.Request) (*syncAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
