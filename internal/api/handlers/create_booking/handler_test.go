package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

const validBody = `{"roomId":"lib-305","date":"2025-10-01","startTime":"10:00","endTime":"11:30","organization":"Chess Club"}`

func serve(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return w
}

func slot(start, end string) domain.TimeSlot {
	s, err := domain.ParseTimeSlot(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.RoomID == "lib-305" && r.Date == types.NewDate(2025, time.October, 1) &&
			r.StartTime.String() == "10:00" && r.EndTime.String() == "11:30" && r.Source == ""
	})).Return(&createBooking.Response{
		ID: "6f1c7d1e-0000-4000-8000-000000000001", RoomID: "lib-305",
		Date: types.NewDate(2025, time.October, 1), Slot: slot("10:00", "11:30"),
		Organization: "Chess Club", Status: "Booked", Source: domain.SourceLocal,
	}, nil)

	w := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "lib-305", body["roomId"])
	assert.Equal(t, "2025-10-01", body["date"])
	assert.Equal(t, "10:00 AM - 11:30 AM", body["timeSlot"])
	assert.Equal(t, "BullSpace", body["source"])
}

func TestHandle_ConflictBody(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &createBooking.ConflictError{
		ConflictWith: &domain.Booking{
			ID: "b1", RoomID: "lib-305", Date: types.NewDate(2025, time.October, 1),
			Slot: slot("11:00", "12:00"), Organization: "Debate", Status: domain.StatusBooked, Source: domain.SourceLibCal,
		},
		Overlapping: 1,
		Suggestion:  &domain.Room{ID: "lib-306", Name: "LIB 306", Building: "Library"},
	})

	w := serve(uc, validBody)

	require.Equal(t, http.StatusConflict, w.Code)
	var body ConflictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Time slot conflicts with an existing booking", body.Message)
	assert.Equal(t, "b1", body.ConflictWith.ID)
	assert.Equal(t, "LibCal", body.ConflictWith.Source)
	require.NotNil(t, body.Suggestion)
	assert.Equal(t, "lib-306", body.Suggestion.ID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"malformed json", `{`, nil, http.StatusBadRequest},
		{"missing fields", `{"roomId":"lib-305"}`, nil, http.StatusBadRequest},
		{"bad date", strings.Replace(validBody, "2025-10-01", "10/01/2025", 1), nil, http.StatusBadRequest},
		{"bad time", strings.Replace(validBody, "11:30", "25:00", 1), nil, http.StatusBadRequest},
		{"room not found", validBody, createBooking.ErrRoomNotFound, http.StatusNotFound},
		{"outside semester", validBody, createBooking.ErrOutsideSemester, http.StatusBadRequest},
		{"past", validBody, createBooking.ErrDateInPast, http.StatusBadRequest},
		{"invalid slot", validBody, createBooking.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"duplicate", validBody, createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"locked", validBody, createBooking.ErrConcurrentRequest, http.StatusServiceUnavailable},
		{"internal", validBody, createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			w := serve(uc, tt.body)

			assert.Equal(t, tt.status, w.Code)
			if tt.err == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
