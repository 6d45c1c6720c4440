package get_price_quote

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// Request запрос расчёта стоимости
type Request struct {
	RoomID    int64
	CheckIn   types.Date
	CheckOut  types.Date
	PromoCode *string // опционально
}

// Response расчёт стоимости проживания
type Response struct {
	RoomID             int64
	CheckIn            types.Date
	CheckOut           types.Date
	Nights             int
	PricePerNight      decimal.Decimal
	BasePrice          decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	FinalPrice         decimal.Decimal
	PromoCode          *string // применённый промокод
}
