package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrRoomNotAvailable возвращается, когда вставка нарушила ограничение на пересечение дат
	ErrRoomNotAvailable = errors.New("booking.repository: room not available for the requested dates")

	// ErrSerializationFailure возвращается, когда СУБД отменила запрос из-за конфликта транзакций
	ErrSerializationFailure = errors.New("booking.repository: serialization failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
