package promotions

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

var (
	// ErrPromotionNotFound возвращается, когда промокод не найден
	ErrPromotionNotFound = errors.New("promotion not found")

	// ErrDuplicateCode возвращается, когда промокод с таким кодом уже есть
	ErrDuplicateCode = errors.New("promo code already exists")

	// ErrPromoDisabled возвращается, когда промокод выключен
	ErrPromoDisabled = domain.ErrPromoDisabled

	// ErrPromoNotStarted возвращается, когда промокод ещё не действует
	ErrPromoNotStarted = domain.ErrPromoNotStarted

	// ErrPromoExpired возвращается, когда срок действия промокода истёк
	ErrPromoExpired = domain.ErrPromoExpired

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
