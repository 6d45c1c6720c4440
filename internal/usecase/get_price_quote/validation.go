package get_price_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	promotionRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/promotion"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// promoCode передаётся уже нормализованным.
func validateRequest(req *Request, promoCode *string) (domain.DateRange, error) {
	if req.RoomID <= 0 {
		return domain.DateRange{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return domain.DateRange{}, fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if promoCode != nil && len(*promoCode) > domain.MaxPromoCodeLength {
		return domain.DateRange{}, fmt.Errorf("%w: promoCode is too long", ErrInvalidInput)
	}

	return domain.NewDateRange(req.CheckIn, req.CheckOut)
}

// resolveDiscount возвращает процент скидки промокода.
// Без промокода скидка нулевая; недействительный промокод всегда ошибка.
func (uc *UseCase) resolveDiscount(ctx context.Context, code *string, today types.Date) (decimal.Decimal, error) {
	if code == nil {
		return decimal.Zero, nil
	}

	promo, err := uc.promotionRepo.GetByCode(ctx, *code)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			uc.metrics.IncPromoRejected("not_found")
			return decimal.Zero, fmt.Errorf("%w: %s", ErrPromoNotFound, *code)
		}
		return decimal.Zero, fmt.Errorf("%w: failed to get promotion: %v", ErrInternal, err)
	}

	if err := promo.CheckRedeemable(today); err != nil {
		uc.metrics.IncPromoRejected(promoRejectReason(err))
		return decimal.Zero, err
	}

	return promo.DiscountPercentage, nil
}

func promoRejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrPromoDisabled):
		return "disabled"
	case errors.Is(err, domain.ErrPromoNotStarted):
		return "not_started"
	case errors.Is(err, domain.ErrPromoExpired):
		return "expired"
	default:
		return "other"
	}
}
