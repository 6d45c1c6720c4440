package check_availability

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListBlockingByRoom(ctx context.Context, roomID int64, period domain.DateRange) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
