package booking

import (
	"context"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

const slotKey = "(room_id, booking_date, start_time, end_time, source)"

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil, "test")), mock
}

func libCalBooking(roomID string, date types.Date, start, end string) *domain.Booking {
	slot, err := domain.ParseTimeSlot(start, end)
	if err != nil {
		panic(err)
	}
	return &domain.Booking{
		ID:           "6f1c2a8e-0000-4000-8000-000000000001",
		RoomID:       roomID,
		Date:         date,
		Slot:         slot,
		Organization: "LibCal Reservation",
		Status:       domain.StatusBooked,
		Source:       domain.SourceLibCal,
		ExternalID:   ptr.Ptr("105593:" + date.String() + " " + start),
	}
}

func TestUniqueSlotKeyIncludesSource(t *testing.T) {
	schema, err := os.ReadFile("../../../../migrations/001_init.sql")
	require.NoError(t, err)

	assert.Contains(t, string(schema), "ON bookings "+slotKey)
	assert.Contains(t, onConflictSlot, slotKey)
}

func TestReplaceBySource_StoresSlotHeldByAnotherSource(t *testing.T) {
	repo, mock := newMockRepository(t)
	day := types.NewDate(2025, time.October, 20)

	// lib-305 10:00-11:00 уже занята локальным бронированием: строка LibCal все равно вставляется
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE source = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings") + ".*" + regexp.QuoteMeta("ON CONFLICT "+slotKey+" DO NOTHING")).
		WithArgs(
			sqlmock.AnyArg(), "lib-305", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), domain.SourceLibCal, sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, inserted, err := repo.ReplaceBySource(context.Background(), domain.SourceLibCal, day, day,
		[]*domain.Booking{libCalBooking("lib-305", day, "10:00", "11:00")})

	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
	assert.Equal(t, int64(1), inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceBySource_BatchesInserts(t *testing.T) {
	repo, mock := newMockRepository(t)
	day := types.NewDate(2025, time.October, 20)

	bookings := make([]*domain.Booking, 0, insertBatchSize+1)
	for i := 0; i <= insertBatchSize; i++ {
		bookings = append(bookings, libCalBooking("lib-305", day.AddDays(i), "10:00", "11:00"))
	}

	mock.ExpectExec("DELETE FROM bookings").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(0, insertBatchSize))
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, inserted, err := repo.ReplaceBySource(context.Background(), domain.SourceLibCal, day, day.AddDays(insertBatchSize), bookings)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.Equal(t, int64(insertBatchSize), inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateWithinSource(t *testing.T) {
	repo, mock := newMockRepository(t)
	day := types.NewDate(2025, time.October, 20)

	b := libCalBooking("lib-305", day, "10:00", "11:00")
	b.Source = domain.SourceLocal
	b.ExternalID = nil

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT " + slotKey + " DO NOTHING RETURNING created_at")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}))

	_, err := repo.Create(context.Background(), b)

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
