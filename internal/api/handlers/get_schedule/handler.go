package get_schedule

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	getSchedule "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

const (
	msgMissingDate = "Date query parameter is required"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
// Query params: date (обязательно), allRooms (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := types.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	allRooms, _ := strconv.ParseBool(query.Get("allRooms"))

	result, err := h.useCase.Execute(r.Context(), &getSchedule.Request{Date: date, AllRooms: allRooms})
	if err != nil {
		h.logger.Error("GET /schedule - Failed to build schedule: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - Schedule built: date=%s, rooms=%d, bookings=%d",
		date, len(result.Rooms), len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
