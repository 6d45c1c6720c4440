package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// Promotion промокод со скидкой в процентах.
// Окно действия [StartDate, EndDate] включает обе границы.
type Promotion struct {
	ID                 int64
	Code               string
	DiscountPercentage decimal.Decimal
	StartDate          types.Date
	EndDate            types.Date
	IsActive           bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CheckRedeemable проверяет, что промокод можно применить в дату today
func (p *Promotion) CheckRedeemable(today types.Date) error {
	if !p.IsActive {
		return fmt.Errorf("%w: %s", ErrPromoDisabled, p.Code)
	}
	if today.Before(p.StartDate) {
		return fmt.Errorf("%w: %s starts %s", ErrPromoNotStarted, p.Code, p.StartDate)
	}
	if today.After(p.EndDate) {
		return fmt.Errorf("%w: %s ended %s", ErrPromoExpired, p.Code, p.EndDate)
	}
	return nil
}

// ValidDiscount проверяет, что процент скидки в пределах [0, 100]
func ValidDiscount(pct decimal.Decimal) bool {
	return !pct.LessThan(decimal.NewFromInt(MinDiscountPercentage)) &&
		!pct.GreaterThan(decimal.NewFromInt(MaxDiscountPercentage))
}

// NormalizePromoCode убирает пробелы по краям. Пустой код означает "без промокода".
// Регистр сохраняется: коды сравниваются точно.
func NormalizePromoCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
