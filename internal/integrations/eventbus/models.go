package eventbus

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// Типы событий, они же routing key
const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventBookingCancelled     = "booking.cancelled"
	EventBookingPaid          = "booking.paid"
)

// BookingEvent событие жизненного цикла бронирования
type BookingEvent struct {
	Type          string               `json:"type"`
	BookingID     int64                `json:"booking_id"`
	UserID        int64                `json:"user_id"`
	RoomID        int64                `json:"room_id"`
	CheckIn       types.Date           `json:"check_in"`
	CheckOut      types.Date           `json:"check_out"`
	Status        domain.BookingStatus `json:"status"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	TotalPrice    decimal.Decimal      `json:"total_price"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

// NewBookingEvent собирает событие по текущему состоянию бронирования
func NewBookingEvent(eventType string, b *domain.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:          eventType,
		BookingID:     b.ID,
		UserID:        b.UserID,
		RoomID:        b.RoomID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		TotalPrice:    b.TotalPrice,
		OccurredAt:    at.UTC(),
	}
}
