package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PriceQuote расчёт стоимости проживания
type PriceQuote struct {
	Nights             int
	PricePerNight      decimal.Decimal
	BasePrice          decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	FinalPrice         decimal.Decimal
}

// QuotePrice считает стоимость в десятичной арифметике.
// Скидка применяется к итоговой сумме один раз, округление до копеек половиной вверх.
func QuotePrice(pricePerNight decimal.Decimal, nights int, discountPercentage decimal.Decimal) PriceQuote {
	base := pricePerNight.Mul(decimal.NewFromInt(int64(nights)))

	final := base
	if !discountPercentage.IsZero() {
		final = base.Mul(hundred.Sub(discountPercentage)).Div(hundred)
	}
	// Суммы неотрицательны, поэтому Round (половина от нуля) совпадает с округлением половиной вверх
	final = final.Round(CurrencyScale)

	return PriceQuote{
		Nights:             nights,
		PricePerNight:      pricePerNight,
		BasePrice:          base,
		DiscountPercentage: discountPercentage,
		DiscountAmount:     base.Sub(final),
		FinalPrice:         final,
	}
}
