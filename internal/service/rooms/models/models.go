package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// ListRoomsRequest фильтр списка номеров.
// CheckIn и CheckOut задаются вместе: остаются номера, свободные на весь период.
type ListRoomsRequest struct {
	Status      *string     `json:"status,omitempty"`
	MinCapacity *int        `json:"minCapacity,omitempty"`
	CheckIn     *types.Date `json:"checkIn,omitempty"`
	CheckOut    *types.Date `json:"checkOut,omitempty"`
}

// CreateRoomRequest запрос на создание номера
type CreateRoomRequest struct {
	RoomNumber    string          `json:"roomNumber" validate:"required,max=10"`
	RoomType      string          `json:"roomType" validate:"required"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Capacity      int             `json:"capacity" validate:"required,min=1,max=20"`
	Description   *string         `json:"description,omitempty"`
	Status        *string         `json:"status,omitempty"` // по умолчанию available
}

// UpdateRoomRequest частичное обновление номера, nil поля не меняются
type UpdateRoomRequest struct {
	RoomNumber    *string          `json:"roomNumber,omitempty" validate:"omitempty,max=10"`
	RoomType      *string          `json:"roomType,omitempty"`
	PricePerNight *decimal.Decimal `json:"pricePerNight,omitempty"`
	Capacity      *int             `json:"capacity,omitempty" validate:"omitempty,min=1,max=20"`
	Description   *string          `json:"description,omitempty"`
}

// UpdateRoomStatusRequest запрос на смену статуса номера
type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID            int64           `json:"id"`
	RoomNumber    string          `json:"roomNumber"`
	RoomType      string          `json:"roomType"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Capacity      int             `json:"capacity"`
	Description   *string         `json:"description,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		RoomType:      r.RoomType,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		Description:   r.Description,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		if r := FromDomainRoom(room); r != nil {
			resp.Rooms = append(resp.Rooms, *r)
		}
	}
	return resp
}
