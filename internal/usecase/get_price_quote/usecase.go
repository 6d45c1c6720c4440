package get_price_quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
)

// UseCase use case расчёта стоимости проживания
type UseCase struct {
	roomRepo      RoomRepository
	promotionRepo PromotionRepository
	metrics       Metrics
	timeProvider  TimeProvider
	location      *time.Location
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// location - часовой пояс отеля, по нему проверяется срок действия промокода.
func NewUseCase(
	roomRepo RoomRepository,
	promotionRepo PromotionRepository,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:      roomRepo,
		promotionRepo: promotionRepo,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		location:      location,
		logger:        logger,
	}
}

// Execute считает стоимость: ставка * ночи, затем скидка промокода, округление до копеек
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	promoCode := domain.NormalizePromoCode(req.PromoCode)

	uc.logger.Info("GetPriceQuote: room=%d, checkIn=%s, checkOut=%s, promo=%v",
		req.RoomID, req.CheckIn, req.CheckOut, promoCode != nil)

	// 1. Валидация входных данных
	period, err := validateRequest(req, promoCode)
	if err != nil {
		uc.logger.Warn("GetPriceQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetPriceQuote: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetPriceQuote: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Проверяем промокод
	today := domain.Today(uc.timeProvider.Now(), uc.location)
	discount, err := uc.resolveDiscount(ctx, promoCode, today)
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("GetPriceQuote: %v", err)
		} else {
			uc.logger.Warn("GetPriceQuote: promo rejected: %v", err)
		}
		return nil, err
	}

	// 4. Считаем стоимость
	quote := domain.QuotePrice(room.PricePerNight, period.Nights(), discount)

	return &Response{
		RoomID:             room.ID,
		CheckIn:            period.CheckIn,
		CheckOut:           period.CheckOut,
		Nights:             quote.Nights,
		PricePerNight:      quote.PricePerNight,
		BasePrice:          quote.BasePrice,
		DiscountPercentage: quote.DiscountPercentage,
		DiscountAmount:     quote.DiscountAmount,
		FinalPrice:         quote.FinalPrice,
		PromoCode:          promoCode,
	}, nil
}
