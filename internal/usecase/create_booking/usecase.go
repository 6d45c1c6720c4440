package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/eventbus"
	"github.com/m04kA/SMC-HotelBookingService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	roomRepo      RoomRepository
	promotionRepo PromotionRepository
	locker        RoomLocker
	txManager     TransactionManager
	publisher     EventPublisher
	metrics       Metrics
	timeProvider  TimeProvider
	location      *time.Location
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	promotionRepo PromotionRepository,
	locker RoomLocker,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		roomRepo:      roomRepo,
		promotionRepo: promotionRepo,
		locker:        locker,
		txManager:     txManager,
		publisher:     publisher,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		location:      location,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений и вставка атомарны для номера: под блокировкой номера
// в сериализуемой транзакции, с ограничением bookings_no_overlap в БД как последним рубежом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	promoCode := domain.NormalizePromoCode(req.PromoCode)

	uc.logger.Info("CreateBooking: user=%d, room=%d, checkIn=%s, checkOut=%s, guests=%d, payment=%s, promo=%v",
		req.UserID, req.RoomID, req.CheckIn, req.CheckOut, req.Guests, req.PaymentMethod, promoCode != nil)

	// 1. Валидация входных данных
	period, err := validateRequest(req, promoCode)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	today := domain.Today(now, uc.location)

	if err := validateCheckInNotPast(period, today); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем промокод до блокировки номера
	promo, err := uc.resolvePromotion(ctx, promoCode, today)
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: %v", err)
		} else {
			uc.logger.Warn("CreateBooking: promo rejected: %v", err)
		}
		return nil, err
	}

	// 4. Блокируем номер
	unlock, err := uc.locker.Lock(ctx, req.RoomID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to lock room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to lock room: %v", ErrInternal, err)
	}
	defer unlock()

	var result *domain.Booking

	// 5. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем номер с блокировкой строки (FOR UPDATE)
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 5.2. Проверяем вместимость
		if !room.Fits(req.Guests) {
			uc.logger.Warn("CreateBooking: %d guests exceed capacity %d of room id=%d",
				req.Guests, room.Capacity, room.ID)
			return fmt.Errorf("%w: capacity %d", ErrGuestsExceedCapacity, room.Capacity)
		}

		// 5.3. Получаем пересекающиеся бронирования с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListBlockingByRoom(txCtx, req.RoomID, period)
		if err != nil {
			return fmt.Errorf("failed to list bookings: %w", err)
		}

		if hasConflict(period, bookings) {
			uc.metrics.IncBookingConflict("check")
			uc.logger.Warn("CreateBooking: room id=%d is not available for %s", req.RoomID, period)
			return ErrRoomNotAvailable
		}

		// 5.4. Считаем стоимость
		booking := newBooking(req, period, room, promo)

		// 5.5. Создаем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.translateTxError(req, err)
	}

	uc.metrics.IncBookingCreated(string(result.PaymentMethod))
	uc.logger.Info("CreateBooking: booking id=%d created, room=%d, %s, total=%s",
		result.ID, result.RoomID, period, result.TotalPrice.StringFixed(domain.CurrencyScale))

	// 6. Публикуем событие (ошибки брокера не влияют на результат)
	uc.publisher.PublishWithGracefulDegradation(ctx,
		eventbus.NewBookingEvent(eventbus.EventBookingCreated, result, now))

	return newResponse(result), nil
}

// newBooking собирает новое бронирование с зафиксированным расчётом цены
func newBooking(req *Request, period domain.DateRange, room *domain.Room, promo *domain.Promotion) *domain.Booking {
	booking := &domain.Booking{
		UserID:        req.UserID,
		RoomID:        room.ID,
		CheckIn:       period.CheckIn,
		CheckOut:      period.CheckOut,
		Guests:        req.Guests,
		Status:        domain.StatusPending,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentMethod.InitialPaymentStatus(),
	}

	quote := domain.QuotePrice(room.PricePerNight, period.Nights(), promoDiscount(promo))
	booking.Nights = quote.Nights
	booking.BasePrice = quote.BasePrice
	booking.DiscountPercentage = quote.DiscountPercentage
	booking.TotalPrice = quote.FinalPrice

	if promo != nil {
		code := promo.Code
		booking.PromoCode = &code
	}

	return booking
}

// translateTxError переводит ошибки транзакции в ошибки usecase.
// Конфликт, обнаруженный СУБД (исключающее ограничение или сериализация), означает занятый номер.
func (uc *UseCase) translateTxError(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrGuestsExceedCapacity),
		errors.Is(err, ErrRoomNotAvailable):
		return err
	case errors.Is(err, bookingRepo.ErrRoomNotAvailable):
		uc.metrics.IncBookingConflict("constraint")
		uc.logger.Warn("CreateBooking: overlap rejected by database for room id=%d: %v", req.RoomID, err)
		return ErrRoomNotAvailable
	case errors.Is(err, bookingRepo.ErrSerializationFailure),
		errors.Is(err, txmanager.ErrSerializationFailure):
		uc.metrics.IncBookingConflict("serialization")
		uc.logger.Warn("CreateBooking: concurrent booking detected for room id=%d: %v", req.RoomID, err)
		return ErrRoomNotAvailable
	case errors.Is(err, ErrInternal):
		uc.logger.Error("CreateBooking: %v", err)
		return err
	default:
		uc.logger.Error("CreateBooking: transaction failed for room id=%d: %v", req.RoomID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
