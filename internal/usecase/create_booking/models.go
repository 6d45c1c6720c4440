package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64                // ID пользователя
	RoomID        int64                // ID номера
	CheckIn       types.Date           // Дата заезда
	CheckOut      types.Date           // Дата выезда (номер свободен с этого дня)
	Guests        int                  // Количество гостей
	PromoCode     *string              // Промокод (опционально)
	PaymentMethod domain.PaymentMethod // cash | bank_transfer
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       int64
	UserID   int64
	RoomID   int64
	CheckIn  types.Date
	CheckOut types.Date
	Guests   int

	Nights             int
	BasePrice          decimal.Decimal
	DiscountPercentage decimal.Decimal
	TotalPrice         decimal.Decimal
	PromoCode          *string

	Status        domain.BookingStatus
	PaymentMethod domain.PaymentMethod
	PaymentStatus domain.PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newResponse(b *domain.Booking) *Response {
	return &Response{
		ID:                 b.ID,
		UserID:             b.UserID,
		RoomID:             b.RoomID,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Guests:             b.Guests,
		Nights:             b.Nights,
		BasePrice:          b.BasePrice,
		DiscountPercentage: b.DiscountPercentage,
		TotalPrice:         b.TotalPrice,
		PromoCode:          b.PromoCode,
		Status:             b.Status,
		PaymentMethod:      b.PaymentMethod,
		PaymentStatus:      b.PaymentStatus,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
