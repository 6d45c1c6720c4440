package check_availability

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInvalidRange возвращается, когда дата заезда не раньше даты выезда
	ErrInvalidRange = domain.ErrInvalidRange

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("check_availability: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
