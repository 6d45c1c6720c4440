package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/eventbus"
	"github.com/m04kA/SMC-HotelBookingService/pkg/roomlock"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListBlockingByRoom(ctx context.Context, roomID int64, period domain.DateRange) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// PromotionRepository интерфейс репозитория промокодов
type PromotionRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
}

// RoomLocker взаимное исключение создания бронирований одного номера
type RoomLocker interface {
	Lock(ctx context.Context, roomID int64) (roomlock.UnlockFunc, error)
}

// EventPublisher публикация событий бронирований
type EventPublisher interface {
	PublishWithGracefulDegradation(ctx context.Context, event eventbus.BookingEvent)
}

// Metrics бизнес-метрики создания бронирований
type Metrics interface {
	IncBookingCreated(paymentMethod string)
	IncBookingConflict(stage string)
	IncPromoRejected(reason string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
