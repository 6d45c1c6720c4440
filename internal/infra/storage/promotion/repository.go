package promotion

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/pgerr"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

var promotionColumns = []string{
	"id",
	"promo_code",
	"discount_percentage",
	"start_date",
	"end_date",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий промокодов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает промокод
func (r *Repository) Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promotions").
		Columns(
			"promo_code",
			"discount_percentage",
			"start_date",
			"end_date",
			"is_active",
		).
		Values(
			promo.Code,
			promo.DiscountPercentage,
			promo.StartDate,
			promo.EndDate,
			promo.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&promo.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pgerr.Is(err, pgerr.UniqueViolation) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, promo.Code)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return promo, nil
}

// GetByID получает промокод по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByCode получает промокод по коду (точное совпадение)
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	return r.getOne(ctx, "GetByCode", squirrel.Eq{"promo_code": code})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	promo, err := scanPromotion(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan promotion: %v", ErrScanRow, op, err)
	}

	return promo, nil
}

// List возвращает все промокоды, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Promotion, error) {
	return r.list(ctx, "List", psqlbuilder.Select(promotionColumns...).
		From("promotions").
		OrderBy("created_at DESC", "id DESC"))
}

// ListActive возвращает включённые промокоды, окно действия которых покрывает today
func (r *Repository) ListActive(ctx context.Context, today types.Date) ([]*domain.Promotion, error) {
	return r.list(ctx, "ListActive", psqlbuilder.Select(promotionColumns...).
		From("promotions").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.LtOrEq{"start_date": today}).
		Where(squirrel.GtOrEq{"end_date": today}).
		OrderBy("end_date ASC"))
}

func (r *Repository) list(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	promos := make([]*domain.Promotion, 0)
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		promos = append(promos, promo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return promos, nil
}

// Update перезаписывает изменяемые поля промокода
func (r *Repository) Update(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promotions").
		Set("promo_code", promo.Code).
		Set("discount_percentage", promo.DiscountPercentage).
		Set("start_date", promo.StartDate).
		Set("end_date", promo.EndDate).
		Set("is_active", promo.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": promo.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		if pgerr.Is(err, pgerr.UniqueViolation) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, promo.Code)
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return promo, nil
}

// Delete удаляет промокод. Бронирования хранят код строкой и не затрагиваются.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("promotions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPromotionNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPromotion(row rowScanner) (*domain.Promotion, error) {
	var promo domain.Promotion
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&promo.ID,
		&promo.Code,
		&promo.DiscountPercentage,
		&promo.StartDate,
		&promo.EndDate,
		&promo.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return &promo, nil
}
