package detect_conflicts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	detectConflicts "github.com/m04kA/SMC-RoomBookingService/internal/usecase/detect_conflicts"
)

const (
	msgInvalidParams = "некорректные параметры: ожидается date или from и to в формате YYYY-MM-DD"
	msgRangeTooLong  = "слишком длинный период, максимум 31 день"
)

type Handler struct {
	useCase DetectConflictsUseCase
	logger  Logger
}

func NewHandler(useCase DetectConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/conflicts
// Query params: date или from и to
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(query.Get("date"), query.Get("from"), query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /conflicts - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, detectConflicts.ErrRangeTooLong):
			h.logger.Warn("GET /conflicts - Range too long: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, detectConflicts.ErrInvalidInput):
			h.logger.Warn("GET /conflicts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /conflicts - Failed to detect conflicts: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /conflicts - Report built: from=%s, to=%s, total=%d",
		result.From, result.To, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
