package rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
