package get_price_quote

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// PromotionRepository интерфейс репозитория промокодов
type PromotionRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
}

// Metrics счётчики отклонённых промокодов
type Metrics interface {
	IncPromoRejected(reason string)
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
