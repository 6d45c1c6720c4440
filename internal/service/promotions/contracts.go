package promotions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// PromotionRepository интерфейс репозитория промокодов
type PromotionRepository interface {
	Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error)
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
	List(ctx context.Context) ([]*domain.Promotion, error)
	ListActive(ctx context.Context, today types.Date) ([]*domain.Promotion, error)
	Update(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id int64) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
