package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPaymentStatus возвращается при некорректном статусе оплаты
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID  int64 `json:"userId"`
	IsStaff bool  `json:"-"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID  int64  `json:"userId"`
	IsStaff bool   `json:"-"`
	Status  string `json:"status"`
}

// UpdatePaymentStatusRequest запрос на обновление статуса оплаты
type UpdatePaymentStatusRequest struct {
	UserID        int64  `json:"userId"`
	IsStaff       bool   `json:"-"`
	PaymentStatus string `json:"paymentStatus"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetAllBookingsRequest запрос персонала на получение бронирований
type GetAllBookingsRequest struct {
	Status *string     `json:"status,omitempty"` // Фильтр по статусу (опционально)
	RoomID *int64      `json:"roomId,omitempty"` // Фильтр по номеру (опционально)
	Date   *types.Date `json:"date,omitempty"`   // Бронирования, покрывающие дату (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAllBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomID: r.RoomID,
		Date:   r.Date,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID       int64      `json:"id"`
	UserID   int64      `json:"userId"`
	RoomID   int64      `json:"roomId"`
	CheckIn  types.Date `json:"checkInDate"`  // "2025-01-20"
	CheckOut types.Date `json:"checkOutDate"` // "2025-01-22"
	Guests   int        `json:"numberOfGuests"`

	Nights             int             `json:"nights"`
	BasePrice          decimal.Decimal `json:"basePrice"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
	PromoCode          *string         `json:"promoCode,omitempty"`

	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`

	CancelledAt *string   `json:"cancelledAt,omitempty"` // ISO 8601 format
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// PaymentStatusResponse статус оплаты бронирования
type PaymentStatusResponse struct {
	BookingID     int64  `json:"bookingId"`
	PaymentStatus string `json:"paymentStatus"`
	BookingStatus string `json:"bookingStatus"`
}

// PaymentInstructionsResponse реквизиты для оплаты банковским переводом
type PaymentInstructionsResponse struct {
	BookingID     int64  `json:"bookingId"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Amount        int64  `json:"amount"` // целые донги
	Memo          string `json:"memo"`
	QRCodePNG     []byte `json:"qrCodePng"` // base64 в JSON
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		RoomID:             b.RoomID,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Guests:             b.Guests,
		Nights:             b.Nights,
		BasePrice:          b.BasePrice,
		DiscountPercentage: b.DiscountPercentage,
		TotalPrice:         b.TotalPrice,
		PromoCode:          b.PromoCode,
		Status:             string(b.Status),
		PaymentMethod:      string(b.PaymentMethod),
		PaymentStatus:      string(b.PaymentStatus),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ToDomainPaymentStatus конвертирует строку в domain.PaymentStatus с валидацией
func ToDomainPaymentStatus(status string) (domain.PaymentStatus, error) {
	s := domain.PaymentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return s, nil
}
