package domain

import "errors"

var (
	// ErrInvalidRange дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("domain: check-out must be after check-in")

	// ErrPromoDisabled промокод выключен
	ErrPromoDisabled = errors.New("domain: promotion is disabled")

	// ErrPromoNotStarted период действия промокода ещё не начался
	ErrPromoNotStarted = errors.New("domain: promotion has not started yet")

	// ErrPromoExpired период действия промокода закончился
	ErrPromoExpired = errors.New("domain: promotion has expired")

	// ErrInvalidTransition недопустимый переход статуса бронирования
	ErrInvalidTransition = errors.New("domain: invalid booking status transition")

	// ErrInvalidPaymentTransition недопустимое изменение статуса оплаты
	ErrInvalidPaymentTransition = errors.New("domain: invalid payment status transition")
)
