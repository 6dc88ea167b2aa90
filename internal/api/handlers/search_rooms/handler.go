package search_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	searchRooms "github.com/m04kA/SMC-RoomBookingService/internal/usecase/search_rooms"
)

const (
	msgInvalidParams    = "некорректные параметры запроса: date YYYY-MM-DD, startTime и endTime HH:MM"
	msgInvalidTimeSlot  = "время начала должно быть раньше времени окончания"
	msgUnknownCapacity  = "неизвестный диапазон вместимости, допустимо: 10-20, 20-40, 50+"
	msgMissingDateParam = "Date query parameter is required"
)

type Handler struct {
	useCase SearchRoomsUseCase
	logger  Logger
}

func NewHandler(useCase SearchRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/search
// Query params: date (обязательно), startTime, endTime, building, type, capacity (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("date") == "" {
		h.logger.Warn("GET /rooms/search - Missing date")
		handlers.RespondBadRequest(w, msgMissingDateParam)
		return
	}

	useCaseReq, err := ToUseCaseRequest(
		query.Get("date"),
		query.Get("startTime"),
		query.Get("endTime"),
		query.Get("building"),
		query.Get("type"),
		query.Get("capacity"),
	)
	if err != nil {
		h.logger.Warn("GET /rooms/search - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, searchRooms.ErrInvalidTimeSlot):
			h.logger.Warn("GET /rooms/search - Invalid time slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, searchRooms.ErrUnknownCapacityRange):
			h.logger.Warn("GET /rooms/search - Unknown capacity: %q", useCaseReq.Capacity)
			handlers.RespondBadRequest(w, msgUnknownCapacity)

		case errors.Is(err, searchRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/search - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /rooms/search - Failed to search rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /rooms/search - Search completed: date=%s, rooms=%d, available=%d",
		response.Date, len(response.Rooms), response.AvailableCount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
