package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/pgerr"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"room_id",
	"check_in_date",
	"check_out_date",
	"number_of_guests",
	"nights",
	"base_price",
	"discount_percentage",
	"total_price",
	"promo_code",
	"status",
	"payment_method",
	"payment_status",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
// Нарушение ограничения bookings_no_overlap возвращается как ErrRoomNotAvailable.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"room_id",
			"check_in_date",
			"check_out_date",
			"number_of_guests",
			"nights",
			"base_price",
			"discount_percentage",
			"total_price",
			"promo_code",
			"status",
			"payment_method",
			"payment_status",
		).
		Values(
			booking.UserID,
			booking.RoomID,
			booking.CheckIn,
			booking.CheckOut,
			booking.Guests,
			booking.Nights,
			booking.BasePrice,
			booking.DiscountPercentage,
			booking.TotalPrice,
			booking.PromoCode,
			booking.Status,
			booking.PaymentMethod,
			booking.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, translateWriteError("Create", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции строка блокируется (FOR UPDATE) до её завершения.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetWithFilter получает бронирования с фильтрацией, сначала новые.
// Фильтр Date отбирает бронирования, в период которых гость проживает в эту дату.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := filterQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListBlockingByRoom возвращает занимающие номер бронирования, пересекающиеся с периодом.
// Пересечение полуинтервалов: check_in_date < checkOut AND check_out_date > checkIn.
// Внутри транзакции найденные строки блокируются (FOR UPDATE).
func (r *Repository) ListBlockingByRoom(ctx context.Context, roomID int64, period domain.DateRange) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := blockingByRoomQuery(roomID, period, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if pgerr.Is(err, pgerr.SerializationFailure, pgerr.DeadlockDetected) {
			return nil, fmt.Errorf("%w: ListBlockingByRoom - %v", ErrSerializationFailure, err)
		}
		return nil, fmt.Errorf("%w: ListBlockingByRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// filterQuery строит выборку для GetWithFilter
func filterQuery(filter domain.BookingsFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.And{
			squirrel.LtOrEq{"check_in_date": *filter.Date},
			squirrel.Gt{"check_out_date": *filter.Date},
		})
	}

	return selectBuilder.OrderBy("created_at DESC", "id DESC")
}

// blockingByRoomQuery строит выборку занимающих номер бронирований, пересекающихся с периодом
func blockingByRoomQuery(roomID int64, period domain.DateRange, forUpdate bool) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": statusStrings(domain.BlockingStatuses)}).
		Where(squirrel.Lt{"check_in_date": period.CheckOut}).
		Where(squirrel.Gt{"check_out_date": period.CheckIn}).
		OrderBy("check_in_date ASC")

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}
	return selectBuilder
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// UpdatePayment обновляет статус оплаты и статус бронирования одним запросом
func (r *Repository) UpdatePayment(ctx context.Context, id int64, paymentStatus domain.PaymentStatus, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", paymentStatus).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePayment - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdatePayment", query, args)
}

// Cancel переводит бронирование в cancelled и фиксирует время отмены
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Cancel", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return translateWriteError(op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// translateWriteError переводит ошибки PostgreSQL в ошибки репозитория
func translateWriteError(op string, err error) error {
	switch {
	case pgerr.Is(err, pgerr.ExclusionViolation):
		return fmt.Errorf("%w: %s - %v", ErrRoomNotAvailable, op, err)
	case pgerr.Is(err, pgerr.SerializationFailure, pgerr.DeadlockDetected):
		return fmt.Errorf("%w: %s - %v", ErrSerializationFailure, op, err)
	default:
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Guests,
		&booking.Nights,
		&booking.BasePrice,
		&booking.DiscountPercentage,
		&booking.TotalPrice,
		&booking.PromoCode,
		&booking.Status,
		&booking.PaymentMethod,
		&booking.PaymentStatus,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
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

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
