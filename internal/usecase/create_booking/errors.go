package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidRange возвращается, когда дата заезда не раньше даты выезда
	ErrInvalidRange = domain.ErrInvalidRange

	// ErrInvalidPaymentMethod возвращается при неподдерживаемом способе оплаты
	ErrInvalidPaymentMethod = errors.New("create_booking: invalid payment method")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrGuestsExceedCapacity возвращается, когда гостей больше, чем вмещает номер
	ErrGuestsExceedCapacity = errors.New("create_booking: number of guests exceeds room capacity")

	// ErrRoomNotAvailable возвращается, когда номер занят на часть запрошенного периода
	ErrRoomNotAvailable = errors.New("create_booking: room is not available for the requested dates")

	// ErrPromoNotFound возвращается, когда промокод не существует
	ErrPromoNotFound = errors.New("create_booking: promo code not found")

	// ErrPromoDisabled возвращается, когда промокод выключен
	ErrPromoDisabled = domain.ErrPromoDisabled

	// ErrPromoNotStarted возвращается, когда промокод ещё не действует
	ErrPromoNotStarted = domain.ErrPromoNotStarted

	// ErrPromoExpired возвращается, когда срок действия промокода истёк
	ErrPromoExpired = domain.ErrPromoExpired

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
