package get_price_quote

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_price_quote: invalid input data")

	// ErrInvalidRange возвращается, когда дата заезда не раньше даты выезда
	ErrInvalidRange = domain.ErrInvalidRange

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("get_price_quote: room not found")

	// ErrPromoNotFound возвращается, когда промокод не существует
	ErrPromoNotFound = errors.New("get_price_quote: promo code not found")

	// ErrPromoDisabled возвращается, когда промокод выключен
	ErrPromoDisabled = domain.ErrPromoDisabled

	// ErrPromoNotStarted возвращается, когда промокод ещё не действует
	ErrPromoNotStarted = domain.ErrPromoNotStarted

	// ErrPromoExpired возвращается, когда срок действия промокода истёк
	ErrPromoExpired = domain.ErrPromoExpired

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_price_quote: internal error")
)
