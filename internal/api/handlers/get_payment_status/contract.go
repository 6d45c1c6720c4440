package get_payment_status

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetPaymentStatus(ctx context.Context, bookingID int64, userID int64, isStaff bool) (*models.PaymentStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
