package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetByFilter(ctx context.Context, f domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, f)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

var day = types.NewDate(2025, time.September, 30)

func sample() *domain.Booking {
	slot, _ := domain.ParseTimeSlot("13:00", "14:30")
	return &domain.Booking{
		ID: "b1", RoomID: "lib-305", Date: day, Slot: slot,
		Organization: "Robotics Club", Status: domain.StatusBooked, Source: domain.SourceLocal,
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("GetByID", mock.Anything, "b1").Return(sample(), nil)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, bookingRepo.ErrBookingNotFound)
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "2025-09-30", resp.Date)
	assert.Equal(t, "13:00", resp.StartTime)
	assert.Equal(t, "14:30", resp.EndTime)
	assert.Equal(t, "01:00 PM - 02:30 PM", resp.TimeSlot)
	assert.Nil(t, resp.CreatedAt)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_ListByDate(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("GetByFilter", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.IsSingleDay() && *f.StartDate == day && f.RoomID != nil && *f.RoomID == "lib-305"
	})).Return([]*domain.Booking{sample()}, nil)
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.ListByDate(context.Background(), &models.ListByDateRequest{Date: day, RoomID: ptr.Ptr("lib-305")})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Robotics Club", resp.Bookings[0].Organization)

	_, err = svc.ListByDate(context.Background(), &models.ListByDateRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
