package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model.
// userId берётся из X-User-ID, а не из тела.
type CreateBookingRequest struct {
	RoomID         int64      `json:"roomId" validate:"required,gt=0"`
	CheckInDate    types.Date `json:"checkInDate"`  // "2025-01-20"
	CheckOutDate   types.Date `json:"checkOutDate"` // "2025-01-22"
	NumberOfGuests int        `json:"numberOfGuests" validate:"required,min=1,max=20"`
	PromoCode      *string    `json:"promoCode,omitempty" validate:"omitempty,max=50"`
	PaymentMethod  string     `json:"paymentMethod" validate:"required,oneof=cash bank_transfer"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64           `json:"id"`
	UserID             int64           `json:"userId"`
	RoomID             int64           `json:"roomId"`
	CheckInDate        types.Date      `json:"checkInDate"`
	CheckOutDate       types.Date      `json:"checkOutDate"`
	NumberOfGuests     int             `json:"numberOfGuests"`
	Nights             int             `json:"nights"`
	BasePrice          decimal.Decimal `json:"basePrice"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
	PromoCode          *string         `json:"promoCode,omitempty"`
	Status             string          `json:"status"`
	PaymentMethod      string          `json:"paymentMethod"`
	PaymentStatus      string          `json:"paymentStatus"`
	CreatedAt          string          `json:"createdAt"`
	UpdatedAt          string          `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:        userID,
		RoomID:        r.RoomID,
		CheckIn:       r.CheckInDate,
		CheckOut:      r.CheckOutDate,
		Guests:        r.NumberOfGuests,
		PromoCode:     r.PromoCode,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                 resp.ID,
		UserID:             resp.UserID,
		RoomID:             resp.RoomID,
		CheckInDate:        resp.CheckIn,
		CheckOutDate:       resp.CheckOut,
		NumberOfGuests:     resp.Guests,
		Nights:             resp.Nights,
		BasePrice:          resp.BasePrice,
		DiscountPercentage: resp.DiscountPercentage,
		TotalPrice:         resp.TotalPrice,
		PromoCode:          resp.PromoCode,
		Status:             string(resp.Status),
		PaymentMethod:      string(resp.PaymentMethod),
		PaymentStatus:      string(resp.PaymentStatus),
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
