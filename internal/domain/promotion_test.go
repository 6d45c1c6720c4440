package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

func TestPromotion_CheckRedeemable(t *testing.T) {
	promo := &Promotion{
		Code:               "SUMMER20",
		DiscountPercentage: dec("20"),
		StartDate:          types.MustParseDate("2025-06-01"),
		EndDate:            types.MustParseDate("2025-08-31"),
		IsActive:           true,
	}

	assert.NoError(t, promo.CheckRedeemable(types.MustParseDate("2025-06-01")), "start date is inclusive")
	assert.NoError(t, promo.CheckRedeemable(types.MustParseDate("2025-08-31")), "end date is inclusive")
	assert.ErrorIs(t, promo.CheckRedeemable(types.MustParseDate("2025-05-31")), ErrPromoNotStarted)
	assert.ErrorIs(t, promo.CheckRedeemable(types.MustParseDate("2025-09-01")), ErrPromoExpired)

	promo.IsActive = false
	assert.ErrorIs(t, promo.CheckRedeemable(types.MustParseDate("2025-07-01")), ErrPromoDisabled)
}

func TestValidDiscount(t *testing.T) {
	assert.True(t, ValidDiscount(dec("0")))
	assert.True(t, ValidDiscount(dec("100")))
	assert.True(t, ValidDiscount(dec("12.5")))
	assert.False(t, ValidDiscount(dec("-1")))
	assert.False(t, ValidDiscount(dec("100.01")))
}

func TestNormalizePromoCode(t *testing.T) {
	code := "  SUMMER20 "
	empty := "   "

	assert.Nil(t, NormalizePromoCode(nil))
	assert.Nil(t, NormalizePromoCode(&empty))
	assert.Equal(t, "SUMMER20", *NormalizePromoCode(&code))
}
