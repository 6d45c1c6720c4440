package bookings

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition возвращается при недопустимой смене статуса бронирования
	ErrInvalidTransition = domain.ErrInvalidTransition

	// ErrInvalidPaymentTransition возвращается при недопустимой смене статуса оплаты
	ErrInvalidPaymentTransition = domain.ErrInvalidPaymentTransition

	// ErrPaymentNotApplicable возвращается, когда бронированию не нужны реквизиты для перевода
	ErrPaymentNotApplicable = errors.New("bank transfer is not applicable to this booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
