package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "Missing required fields: roomId, date, startTime, endTime, organization"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidTimeSlot    = "время начала должно быть раньше времени окончания"
	msgOutsideSemester    = "Bookings are only allowed within the semester window."
	msgDateInPast         = "Cannot make reservations in the past."
	msgStartInPast        = "выбранный временной слот уже начался"
	msgRoomNotFound       = "Room not found"
	msgSlotNotAvailable   = "Time slot conflicts with an existing booking"
	msgConcurrentRequest  = "комната прямо сейчас бронируется другим запросом, повторите попытку"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		var pErr *parseError
		switch {
		case errors.Is(err, errMissingFields):
			handlers.RespondBadRequest(w, msgMissingFields)
		case errors.As(err, &pErr) && pErr.field == "date":
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createBooking.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Slot conflicts: room_id=%s, date=%s, conflict_with=%s",
				req.RoomID, req.Date, conflictErr.ConflictWith.ID)
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgSlotNotAvailable, conflictErr))

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: room_id=%s, date=%s", req.RoomID, req.Date)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrConcurrentRequest):
			h.logger.Warn("POST /bookings - Concurrent request: room_id=%s, date=%s", req.RoomID, req.Date)
			handlers.RespondServiceUnavailable(w, msgConcurrentRequest)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrOutsideSemester):
			h.logger.Warn("POST /bookings - Outside semester: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgOutsideSemester)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrStartInPast):
			h.logger.Warn("POST /bookings - Slot already started: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgStartInPast)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%s, date=%s, error=%v",
				req.RoomID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, room_id=%s",
		result.ID, result.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
