package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room not found")

	// ErrDuplicateRoomNumber возвращается, когда номер с таким room_number уже есть
	ErrDuplicateRoomNumber = errors.New("room number already exists")

	// ErrRoomHasBookings возвращается при удалении номера, на который есть бронирования
	ErrRoomHasBookings = errors.New("room has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
