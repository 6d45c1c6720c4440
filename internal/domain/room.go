package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomStatus информационный статус номера, выставляется персоналом
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

// IsValid проверяет, что статус входит в перечисление
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance:
		return true
	}
	return false
}

// Room номер отеля.
// Status не участвует в проверке доступности дат.
type Room struct {
	ID            int64
	RoomNumber    string
	RoomType      string
	PricePerNight decimal.Decimal
	Capacity      int
	Description   *string
	Status        RoomStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fits проверяет, что номер вмещает guests гостей
func (r *Room) Fits(guests int) bool {
	return guests >= MinGuests && guests <= r.Capacity
}

// RoomsFilter фильтр списка номеров
type RoomsFilter struct {
	Status      *RoomStatus // опционально
	MinCapacity *int        // номера, вмещающие не меньше гостей
	FreeDuring  *DateRange  // номера без занимающих бронирований, пересекающихся с периодом
}
