package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// Допустимые переходы статусов. checked_out и cancelled терминальные.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// IsValid проверяет, что статус входит в перечисление
func (s BookingStatus) IsValid() bool {
	for _, valid := range AllBookingStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// IsBlocking returns true if a booking in this status occupies the room
func (s BookingStatus) IsBlocking() bool {
	for _, blocking := range BlockingStatuses {
		if s == blocking {
			return true
		}
	}
	return false
}

// CanTransitionTo проверяет допустимость перехода s -> next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentMethod способ оплаты
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid проверяет, что способ оплаты поддерживается
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentBankTransfer
}

// InitialPaymentStatus статус оплаты новой брони:
// наличные оплачиваются при заезде, перевод ожидает подтверждения персоналом
func (m PaymentMethod) InitialPaymentStatus() PaymentStatus {
	if m == PaymentBankTransfer {
		return PaymentPending
	}
	return PaymentUnpaid
}

// PaymentStatus статус оплаты
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// IsValid проверяет, что статус оплаты входит в перечисление
func (s PaymentStatus) IsValid() bool {
	return s == PaymentUnpaid || s == PaymentPending || s == PaymentPaid
}

// Booking represents a room booking
type Booking struct {
	ID       int64
	UserID   int64
	RoomID   int64
	CheckIn  types.Date
	CheckOut types.Date
	Guests   int

	// Расчёт цены фиксируется на момент бронирования
	Nights             int
	BasePrice          decimal.Decimal
	DiscountPercentage decimal.Decimal
	TotalPrice         decimal.Decimal
	PromoCode          *string

	Status        BookingStatus
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Range возвращает период проживания
func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// IsBlocking returns true if the booking occupies its room
func (b *Booking) IsBlocking() bool {
	return b.Status.IsBlocking()
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled)
}

// TransitionTo меняет статус по конечному автомату
func (b *Booking) TransitionTo(next BookingStatus) error {
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, next)
	}
	b.Status = next
	return nil
}

// ApplyPaymentStatus меняет статус оплаты.
// Единственный допустимый переход - в paid (из unpaid или pending).
// Оплата брони в статусе pending автоматически подтверждает её.
func (b *Booking) ApplyPaymentStatus(next PaymentStatus) (autoConfirmed bool, err error) {
	if b.Status == StatusCancelled {
		return false, fmt.Errorf("%w: booking is cancelled", ErrInvalidPaymentTransition)
	}
	if next != PaymentPaid || b.PaymentStatus == PaymentPaid {
		return false, fmt.Errorf("%w: %s -> %s", ErrInvalidPaymentTransition, b.PaymentStatus, next)
	}

	b.PaymentStatus = PaymentPaid
	if b.Status == StatusPending {
		b.Status = StatusConfirmed
		return true, nil
	}
	return false, nil
}

// BookingsFilter фильтр для получения бронирований
type BookingsFilter struct {
	UserID *int64         // бронирования пользователя (опционально)
	RoomID *int64         // бронирования номера (опционально)
	Status *BookingStatus // фильтр по статусу (опционально)
	Date   *types.Date    // бронирования, период которых покрывает дату (опционально)
}
