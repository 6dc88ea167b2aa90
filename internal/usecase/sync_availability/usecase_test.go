package sync_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/libcal"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

type mockClient struct{ mock.Mock }

func (m *mockClient) FetchSlots(ctx context.Context, start, end types.Date) ([]libcal.Slot, error) {
	args := m.Called(ctx, start, end)
	if v := args.Get(0); v != nil {
		return v.([]libcal.Slot), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) ReplaceBySource(ctx context.Context, source string, from, to types.Date, bookings []*domain.Booking) (int64, int64, error) {
	args := m.Called(ctx, source, from, to, bookings)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) List(ctx context.Context) ([]*domain.Room, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type syncMetrics struct {
	err      error
	imported int
	calls    int
}

func (m *syncMetrics) SyncFinished(err error, imported int) {
	m.calls++
	m.err = err
	m.imported = imported
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	today = types.NewDate(2025, time.October, 20)
	items = map[string]string{
		"105593": "lib-305",
		"105594": "lib-306",
		"11355":  "lib-307",
	}
	catalog = []*domain.Room{
		{ID: "lib-305", Name: "LIB 305"},
		{ID: "lib-306", Name: "LIB 306"},
	}
)

func slot(itemID int64, start, end, class string) libcal.Slot {
	return libcal.Slot{
		ItemID:    itemID,
		Start:     "2025-10-20 " + start + ":00",
		End:       "2025-10-20 " + end + ":00",
		ClassName: class,
	}
}

func newUseCase(client *mockClient, repo *mockBookingRepo, rooms *mockRoomRepo, metrics *syncMetrics, window int) *UseCase {
	uc := NewUseCase(client, repo, rooms, inlineTx{}, metrics, Config{
		WindowDays: window,
		Items:      items,
		Location:   time.UTC,
	}, logger.NewNop())
	uc.timeProvider = fixedTime{now: time.Date(2025, time.October, 20, 6, 0, 0, 0, time.UTC)}
	n := 0
	uc.newID = func() string {
		n++
		return "id-" + string(rune('0'+n))
	}
	return uc
}

func TestExecute_ImportsMergedBookedSlots(t *testing.T) {
	client := &mockClient{}
	repo := &mockBookingRepo{}
	rooms := &mockRoomRepo{}
	metrics := &syncMetrics{}

	client.On("FetchSlots", mock.Anything, today, today.AddDays(1)).Return([]libcal.Slot{
		slot(105593, "10:00", "10:30", "s-lc-eq-checkout"),
		slot(105593, "10:30", "11:00", "s-lc-eq-checkout"),
		slot(105593, "11:00", "11:30", ""),
		slot(105593, "12:00", "12:30", "s-lc-eq-checkout"),
		slot(105594, "09:00", "09:30", "s-lc-eq-checkout"),
		slot(999999, "09:00", "09:30", "s-lc-eq-checkout"),
		slot(11355, "09:00", "09:30", "s-lc-eq-checkout"),
	}, nil)
	rooms.On("List", mock.Anything).Return(catalog, nil)

	var stored []*domain.Booking
	repo.On("ReplaceBySource", mock.Anything, domain.SourceLibCal, today, today, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(4).([]*domain.Booking) }).
		Return(int64(2), int64(3), nil)

	resp, err := newUseCase(client, repo, rooms, metrics, 1).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Equal(t, 7, resp.SlotsReceived)
	assert.Equal(t, 6, resp.BookedSlots)
	assert.Equal(t, 1, resp.SkippedUnmapped)
	assert.Equal(t, int64(3), resp.Imported)
	assert.Equal(t, int64(2), resp.Deleted)

	// lib-307 есть в маппинге, но не в каталоге
	require.Len(t, stored, 3)
	assert.Equal(t, "lib-305", stored[0].RoomID)
	assert.Equal(t, "10:00-11:00", stored[0].Slot.String())
	assert.Equal(t, "12:00-12:30", stored[1].Slot.String())
	assert.Equal(t, "lib-306", stored[2].RoomID)
	for _, b := range stored {
		assert.Equal(t, domain.SourceLibCal, b.Source)
		assert.Equal(t, ImportedOrganization, b.Organization)
		assert.Equal(t, domain.StatusBooked, b.Status)
		require.NotNil(t, b.ExternalID)
	}
	assert.Equal(t, "105593:2025-10-20 10:00", *stored[0].ExternalID)

	assert.Equal(t, 1, metrics.calls)
	assert.NoError(t, metrics.err)
	assert.Equal(t, 3, metrics.imported)
}

func TestExecute_ReportsDuplicateLibCalSlots(t *testing.T) {
	client := &mockClient{}
	repo := &mockBookingRepo{}
	rooms := &mockRoomRepo{}

	client.On("FetchSlots", mock.Anything, today, today.AddDays(1)).Return([]libcal.Slot{
		slot(105593, "10:00", "11:00", "s-lc-eq-checkout"),
		slot(105594, "10:00", "11:00", "s-lc-eq-checkout"),
	}, nil)
	rooms.On("List", mock.Anything).Return(catalog, nil)
	repo.On("ReplaceBySource", mock.Anything, domain.SourceLibCal, today, today, mock.Anything).
		Return(int64(0), int64(1), nil)

	resp, err := newUseCase(client, repo, rooms, &syncMetrics{}, 1).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Imported)
	assert.Equal(t, int64(1), resp.SkippedDuplicates)
}

func TestExecute_FetchesEachDayOfWindow(t *testing.T) {
	client := &mockClient{}
	repo := &mockBookingRepo{}
	rooms := &mockRoomRepo{}

	for i := 0; i < 3; i++ {
		d := today.AddDays(i)
		client.On("FetchSlots", mock.Anything, d, d.AddDays(1)).Return([]libcal.Slot{}, nil).Once()
	}
	rooms.On("List", mock.Anything).Return(catalog, nil)
	repo.On("ReplaceBySource", mock.Anything, domain.SourceLibCal, today, today.AddDays(2), mock.Anything).
		Return(int64(4), int64(0), nil)

	resp, err := newUseCase(client, repo, rooms, &syncMetrics{}, 3).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Equal(t, today.AddDays(2), resp.To)
	assert.Equal(t, int64(4), resp.Deleted)
	client.AssertExpectations(t)
}

func TestExecute_FetchFailureKeepsExistingBookings(t *testing.T) {
	client := &mockClient{}
	repo := &mockBookingRepo{}
	metrics := &syncMetrics{}

	client.On("FetchSlots", mock.Anything, mock.Anything, mock.Anything).Return(nil, libcal.ErrUnavailable)

	_, err := newUseCase(client, repo, &mockRoomRepo{}, metrics, 2).Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrFetchFailed)
	repo.AssertNotCalled(t, "ReplaceBySource", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Error(t, metrics.err)
}

func TestExecute_StoreFailure(t *testing.T) {
	client := &mockClient{}
	repo := &mockBookingRepo{}
	rooms := &mockRoomRepo{}

	client.On("FetchSlots", mock.Anything, mock.Anything, mock.Anything).Return([]libcal.Slot{}, nil)
	rooms.On("List", mock.Anything).Return(catalog, nil)
	repo.On("ReplaceBySource", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), int64(0), errors.New("deadlock detected"))

	_, err := newUseCase(client, repo, rooms, &syncMetrics{}, 1).Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestMergeSlots(t *testing.T) {
	mk := func(room, start, end string) bookedSlot {
		s, err := domain.ParseTimeSlot(start, end)
		if err != nil {
			panic(err)
		}
		return bookedSlot{roomID: room, date: today, slot: s}
	}

	merged := mergeSlots([]bookedSlot{
		mk("a", "11:00", "11:30"),
		mk("b", "09:00", "09:30"),
		mk("a", "10:00", "10:30"),
		mk("a", "10:30", "11:00"),
		mk("a", "10:15", "10:45"),
		mk("a", "13:00", "13:30"),
	})

	require.Len(t, merged, 3)
	assert.Equal(t, "a", merged[0].roomID)
	assert.Equal(t, "10:00-11:30", merged[0].slot.String())
	assert.Equal(t, "13:00-13:30", merged[1].slot.String())
	assert.Equal(t, "b", merged[2].roomID)
}
