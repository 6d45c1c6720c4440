package room

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

var roomColumns = []string{
	"id",
	"room_number",
	"room_type",
	"price_per_night",
	"capacity",
	"description",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает номер по ID.
// Внутри транзакции строка номера блокируется (FOR UPDATE): так сериализуется
// создание бронирований одного номера.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// List возвращает номера по фильтру, упорядоченные по номеру комнаты
func (r *Repository) List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder, err := listQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build free period subquery: %v", ErrBuildQuery, err)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// listQuery строит выборку номеров по фильтру.
// FreeDuring исключает номера, у которых есть занимающее бронирование с пересечением
// полуинтервалов: check_in_date < checkOut AND check_out_date > checkIn.
func listQuery(filter domain.RoomsFilter) (squirrel.SelectBuilder, error) {
	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("room_number ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.MinCapacity != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"capacity": *filter.MinCapacity})
	}
	if filter.FreeDuring != nil {
		// Подзапрос с плейсхолдерами "?", нумерацию $n выставит внешний builder
		subQuery, subArgs, err := squirrel.Select("1").
			From("bookings b").
			Where("b.room_id = rooms.id").
			Where(squirrel.Eq{"b.status": blockingStatuses()}).
			Where(squirrel.Lt{"b.check_in_date": filter.FreeDuring.CheckOut}).
			Where(squirrel.Gt{"b.check_out_date": filter.FreeDuring.CheckIn}).
			ToSql()
		if err != nil {
			return selectBuilder, err
		}
		selectBuilder = selectBuilder.Where("NOT EXISTS ("+subQuery+")", subArgs...)
	}

	return selectBuilder, nil
}

func blockingStatuses() []string {
	result := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		result[i] = string(s)
	}
	return result
}

// Create создает номер
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"room_number",
			"room_type",
			"price_per_night",
			"capacity",
			"description",
			"status",
		).
		Values(
			room.RoomNumber,
			room.RoomType,
			room.PricePerNight,
			room.Capacity,
			room.Description,
			room.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pgerr.Is(err, pgerr.UniqueViolation) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoomNumber, room.RoomNumber)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

// UpdateStatus обновляет информационный статус номера
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected("UpdateStatus", result)
}

// Update сохраняет редактируемые поля номера: номер комнаты, тип, цену, вместимость и описание.
// Статус меняется только через UpdateStatus.
func (r *Repository) Update(ctx context.Context, room *domain.Room) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("room_number", room.RoomNumber).
		Set("room_type", room.RoomType).
		Set("price_per_night", room.PricePerNight).
		Set("capacity", room.Capacity).
		Set("description", room.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerr.Is(err, pgerr.UniqueViolation) {
			return fmt.Errorf("%w: %s", ErrDuplicateRoomNumber, room.RoomNumber)
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected("Update", result)
}

// Delete удаляет номер. Номер с бронированиями (в любом статусе) не удаляется:
// на него ссылается внешний ключ bookings.room_id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerr.Is(err, pgerr.ForeignKeyViolation) {
			return fmt.Errorf("%w: room id=%d", ErrRoomHasBookings, id)
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected("Delete", result)
}

func checkAffected(op string, result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.RoomNumber,
		&room.RoomType,
		&room.PricePerNight,
		&room.Capacity,
		&room.Description,
		&room.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}
