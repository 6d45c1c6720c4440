package create_booking

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
	if req.UserID <= 0 {
		return domain.DateRange{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return domain.DateRange{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return domain.DateRange{}, fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		return domain.DateRange{}, fmt.Errorf("%w: guests must be between %d and %d",
			ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
	}

	if promoCode != nil && len(*promoCode) > domain.MaxPromoCodeLength {
		return domain.DateRange{}, fmt.Errorf("%w: promoCode is too long", ErrInvalidInput)
	}

	if !req.PaymentMethod.IsValid() {
		return domain.DateRange{}, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, req.PaymentMethod)
	}

	return domain.NewDateRange(req.CheckIn, req.CheckOut)
}

// validateCheckInNotPast запрещает бронирование с датой заезда в прошлом
func validateCheckInNotPast(period domain.DateRange, today types.Date) error {
	if period.CheckIn.Before(today) {
		return fmt.Errorf("%w: checkIn %s is in the past", ErrInvalidInput, period.CheckIn)
	}
	return nil
}

// resolvePromotion проверяет промокод до блокировки номера.
// Недействительный промокод всегда ошибка, без промокода возвращается nil.
func (uc *UseCase) resolvePromotion(ctx context.Context, code *string, today types.Date) (*domain.Promotion, error) {
	if code == nil {
		return nil, nil
	}

	promo, err := uc.promotionRepo.GetByCode(ctx, *code)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			uc.metrics.IncPromoRejected("not_found")
			return nil, fmt.Errorf("%w: %s", ErrPromoNotFound, *code)
		}
		return nil, fmt.Errorf("%w: failed to get promotion: %v", ErrInternal, err)
	}

	if err := promo.CheckRedeemable(today); err != nil {
		uc.metrics.IncPromoRejected(promoRejectReason(err))
		return nil, err
	}

	return promo, nil
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

// hasConflict сообщает, пересекается ли период с занимающими номер бронированиями
func hasConflict(period domain.DateRange, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.IsBlocking() && b.Range().Overlaps(period) {
			return true
		}
	}
	return false
}

func promoDiscount(promo *domain.Promotion) decimal.Decimal {
	if promo == nil {
		return decimal.Zero
	}
	return promo.DiscountPercentage
}
