package get_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getSchedule "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getSchedule.Request) (*getSchedule.Response, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*getSchedule.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle_RendersGrid(t *testing.T) {
	date := types.NewDate(2025, 10, 20)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getSchedule.Request{Date: date, AllRooms: true}).Return(&getSchedule.Response{
		Date:      date,
		Rooms:     []string{"LIB 305"},
		TimeSlots: []string{"08:00 AM", "09:00 AM"},
		Bookings: []getSchedule.EnrichedBooking{{
			Booking: &domain.Booking{
				ID:     "b-1",
				RoomID: "lib-305",
				Date:   date,
				Slot: domain.TimeSlot{
					Start: types.MustTimeOfDay(8, 0),
					End:   types.MustTimeOfDay(9, 0),
				},
				Status: domain.StatusBooked,
				Source: domain.SourceLibCal,
			},
			RoomName:     "LIB 305",
			Building:     "Library",
			RoomCapacity: 6,
		}},
	}, nil)

	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/schedule?date=2025-10-20&allRooms=true", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"room_name":"LIB 305"`)
	assert.Contains(t, body, `"room_capacity":6`)
	assert.Contains(t, body, `"roomId":"lib-305"`)
	assert.Contains(t, body, `"timeSlots":["08:00 AM","09:00 AM"]`)
	uc.AssertExpectations(t)
}

func TestHandle_DateValidation(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, logger.NewNop())

	for _, target := range []string{"/schedule", "/schedule?date=10/20/2025"} {
		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
