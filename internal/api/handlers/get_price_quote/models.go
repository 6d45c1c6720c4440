package get_price_quote

import (
	"github.com/shopspring/decimal"

	getPriceQuote "github.com/m04kA/SMC-HotelBookingService/internal/usecase/get_price_quote"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// PriceQuoteResponse HTTP response model
type PriceQuoteResponse struct {
	RoomID             int64           `json:"roomId"`
	CheckIn            types.Date      `json:"checkInDate"`
	CheckOut           types.Date      `json:"checkOutDate"`
	Nights             int             `json:"nights"`
	PricePerNight      decimal.Decimal `json:"pricePerNight"`
	BasePrice          decimal.Decimal `json:"basePrice"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	FinalPrice         decimal.Decimal `json:"finalPrice"`
	PromoCode          *string         `json:"promoCode,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getPriceQuote.Response) *PriceQuoteResponse {
	return &PriceQuoteResponse{
		RoomID:             resp.RoomID,
		CheckIn:            resp.CheckIn,
		CheckOut:           resp.CheckOut,
		Nights:             resp.Nights,
		PricePerNight:      resp.PricePerNight,
		BasePrice:          resp.BasePrice,
		DiscountPercentage: resp.DiscountPercentage,
		DiscountAmount:     resp.DiscountAmount,
		FinalPrice:         resp.FinalPrice,
		PromoCode:          resp.PromoCode,
	}
}
