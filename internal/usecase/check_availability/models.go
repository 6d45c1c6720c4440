package check_availability

import "github.com/m04kA/SMC-HotelBookingService/pkg/types"

// Request запрос проверки доступности номера на период [CheckIn, CheckOut)
type Request struct {
	RoomID   int64
	CheckIn  types.Date
	CheckOut types.Date
}

// Response результат проверки
type Response struct {
	RoomID    int64
	CheckIn   types.Date
	CheckOut  types.Date
	Nights    int
	Available bool
	Conflicts []Conflict // пустой, если номер свободен
}

// Conflict занимающее номер бронирование, пересекающееся с запрошенным периодом
type Conflict struct {
	BookingID int64
	CheckIn   types.Date
	CheckOut  types.Date
}
