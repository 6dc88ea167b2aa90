package sync_libcal

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	syncAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/sync_availability"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

const (
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgLibCalUnavailable = "LibCal недоступен, синхронизация не выполнена"
)

type Handler struct {
	useCase SyncUseCase
	logger  Logger
}

func NewHandler(useCase SyncUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/sync/libcal
// Query params: from (опционально, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &syncAvailability.Request{}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := types.ParseDate(fromStr)
		if err != nil {
			h.logger.Warn("POST /admin/sync/libcal - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.From = from
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, syncAvailability.ErrFetchFailed):
			h.logger.Warn("POST /admin/sync/libcal - LibCal unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgLibCalUnavailable)

		default:
			h.logger.Error("POST /admin/sync/libcal - Sync failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/sync/libcal - Sync completed: imported=%d, deleted=%d", result.Imported, result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
