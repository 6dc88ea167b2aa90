package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// insertBatchSize размер пачки при массовой записи импортированных бронирований
const insertBatchSize = 25

// onConflictSlot цель совпадает с uq_bookings_room_slot_source: слот уникален в пределах источника
const onConflictSlot = "ON CONFLICT (room_id, booking_date, start_time, end_time, source) DO NOTHING"

var bookingColumns = []string{
	"id",
	"room_id",
	"booking_date",
	"start_time",
	"end_time",
	"organization",
	"status",
	"source",
	"external_id",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Запись условная: при совпадении (room_id, booking_date, start_time, end_time, source)
// с уже существующей строкой ничего не вставляется и возвращается ErrDuplicate.
// Это последний барьер от гонки двух одновременных запросов на один и тот же слот
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"room_id",
			"booking_date",
			"start_time",
			"end_time",
			"organization",
			"status",
			"source",
			"external_id",
		).
		Values(
			booking.ID,
			booking.RoomID,
			booking.Date,
			booking.Slot.Start,
			booking.Slot.End,
			booking.Organization,
			booking.Status,
			booking.Source,
			booking.ExternalID,
		).
		Suffix(onConflictSlot + " RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByFilter получает бронирования с фильтрацией по комнате, периоду и источнику
// Сортировка: дата, время начала, время создания - порядок, в котором
// проверка доступности и поиск конфликтов видят бронирования
//
// Внутри транзакции для одной комнаты на одну дату добавляется FOR UPDATE
// (usecase создания бронирования перечитывает слоты перед записью)
func (r *Repository) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusBooked})

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.Source != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"source": *filter.Source})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date ASC", "start_time ASC", "created_at ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.RoomID != nil && filter.IsSingleDay() {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ReplaceBySource заменяет бронирования источника source в периоде [from, to] на bookings
// Возвращает количество удаленных и вставленных строк.
// Дубликаты слота внутри source пропускаются, бронирования других источников не мешают вставке.
// Вызывать внутри транзакции, иначе читатели увидят промежуточное пустое состояние
func (r *Repository) ReplaceBySource(
	ctx context.Context,
	source string,
	from, to types.Date,
	bookings []*domain.Booking,
) (deleted int64, inserted int64, err error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"source": source}).
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.LtOrEq{"booking_date": to}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: ReplaceBySource - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: ReplaceBySource - execute delete: %v", ErrExecQuery, err)
	}
	if deleted, err = result.RowsAffected(); err != nil {
		return 0, 0, fmt.Errorf("%w: ReplaceBySource - get rows affected: %v", ErrExecQuery, err)
	}

	for start := 0; start < len(bookings); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(bookings) {
			end = len(bookings)
		}

		n, err := r.insertBatch(ctx, executor, bookings[start:end])
		if err != nil {
			return 0, 0, err
		}
		inserted += n
	}

	return deleted, inserted, nil
}

func (r *Repository) insertBatch(ctx context.Context, executor DBExecutor, batch []*domain.Booking) (int64, error) {
	insertBuilder := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"room_id",
			"booking_date",
			"start_time",
			"end_time",
			"organization",
			"status",
			"source",
			"external_id",
		)

	for _, b := range batch {
		insertBuilder = insertBuilder.Values(
			b.ID,
			b.RoomID,
			b.Date,
			b.Slot.Start,
			b.Slot.End,
			b.Organization,
			b.Status,
			b.Source,
			b.ExternalID,
		)
	}

	query, args, err := insertBuilder.Suffix(onConflictSlot).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: insertBatch - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: insertBatch - execute insert: %v", ErrExecQuery, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: insertBatch - get rows affected: %v", ErrExecQuery, err)
	}

	return n, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var status string
	var externalID sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.Date,
		&booking.Slot.Start,
		&booking.Slot.End,
		&booking.Organization,
		&status,
		&booking.Source,
		&externalID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatus(status)
	if externalID.Valid {
		booking.ExternalID = &externalID.String
	}
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
