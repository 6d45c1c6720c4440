package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestQuotePrice_NoDiscount(t *testing.T) {
	q := QuotePrice(dec("500000"), 2, decimal.Zero)

	assert.Equal(t, 2, q.Nights)
	assert.True(t, q.BasePrice.Equal(dec("1000000")))
	assert.True(t, q.FinalPrice.Equal(q.BasePrice))
	assert.True(t, q.DiscountAmount.IsZero())
}

func TestQuotePrice_WithDiscount(t *testing.T) {
	q := QuotePrice(dec("500000"), 2, dec("20"))

	assert.True(t, q.BasePrice.Equal(dec("1000000")))
	assert.True(t, q.FinalPrice.Equal(dec("800000")), q.FinalPrice.String())
	assert.True(t, q.DiscountAmount.Equal(dec("200000")))
}

func TestQuotePrice_ZeroPercentIsIdentity(t *testing.T) {
	q := QuotePrice(dec("123.45"), 3, dec("0"))

	assert.True(t, q.FinalPrice.Equal(q.BasePrice))
}

func TestQuotePrice_RoundsOnceHalfUp(t *testing.T) {
	// 3 * 33.35 = 100.05; 100.05 * 0.85 = 85.0425 -> 85.04
	q := QuotePrice(dec("33.35"), 3, dec("15"))
	assert.True(t, q.FinalPrice.Equal(dec("85.04")), q.FinalPrice.String())

	// 1 * 0.05 * 0.5 = 0.025 -> 0.03
	q = QuotePrice(dec("0.05"), 1, dec("50"))
	assert.True(t, q.FinalPrice.Equal(dec("0.03")), q.FinalPrice.String())
}

func TestQuotePrice_ManyNightsNoDrift(t *testing.T) {
	q := QuotePrice(dec("0.10"), 90, decimal.Zero)

	assert.True(t, q.BasePrice.Equal(dec("9")), q.BasePrice.String())
}

func TestQuotePrice_FullDiscount(t *testing.T) {
	q := QuotePrice(dec("500000"), 1, dec("100"))

	assert.True(t, q.FinalPrice.IsZero())
}

func TestQuotePrice_Deterministic(t *testing.T) {
	a := QuotePrice(dec("499999.99"), 7, dec("12.5"))
	b := QuotePrice(dec("499999.99"), 7, dec("12.5"))

	assert.Equal(t, a.FinalPrice.String(), b.FinalPrice.String())
}
