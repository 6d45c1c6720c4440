package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrDuplicateRoomNumber возвращается при попытке создать номер с существующим room_number
	ErrDuplicateRoomNumber = errors.New("room.repository: duplicate room number")

	// ErrRoomHasBookings возвращается при удалении номера, на который есть бронирования
	ErrRoomHasBookings = errors.New("room.repository: room has bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
