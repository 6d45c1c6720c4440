package domain

import "github.com/m04kA/SMC-HotelBookingService/pkg/types"

// Денежные суммы хранятся как NUMERIC(12,2)
const CurrencyScale = 2

// Business validation constants
const (
	MinGuests             = 1
	MaxGuests             = 20
	MinDiscountPercentage = 0
	MaxDiscountPercentage = 100
	MaxPromoCodeLength    = 50
	MaxRoomNumberLength   = 10
)

// Time format constants
const (
	DateFormat = types.DateLayout // YYYY-MM-DD
)

// BlockingStatuses статусы бронирований, которые занимают номер.
// Завершённые (checked_out) и отменённые бронирования даты не блокируют.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
}

// AllBookingStatuses все допустимые статусы бронирования
var AllBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
}
