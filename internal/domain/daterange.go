package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// DateRange полуинтервал проживания [CheckIn, CheckOut): в день выезда номер уже свободен
type DateRange struct {
	CheckIn  types.Date
	CheckOut types.Date
}

// NewDateRange создает и проверяет диапазон
func NewDateRange(checkIn, checkOut types.Date) (DateRange, error) {
	r := DateRange{CheckIn: checkIn, CheckOut: checkOut}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate проверяет, что заезд строго раньше выезда. Длительность не ограничена.
func (r DateRange) Validate() error {
	if !r.CheckIn.Before(r.CheckOut) {
		return fmt.Errorf("%w: %s - %s", ErrInvalidRange, r.CheckIn, r.CheckOut)
	}
	return nil
}

// Nights количество ночей
func (r DateRange) Nights() int {
	return r.CheckIn.DaysUntil(r.CheckOut)
}

// Overlaps проверяет пересечение полуинтервалов.
// Строгие неравенства: бронирования "встык" не конфликтуют.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

// Contains сообщает, что в дату d гость проживает в номере
func (r DateRange) Contains(d types.Date) bool {
	return !d.Before(r.CheckIn) && d.Before(r.CheckOut)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.CheckIn, r.CheckOut)
}

// Today календарная дата момента now в часовом поясе отеля
func Today(now time.Time, loc *time.Location) types.Date {
	if loc == nil {
		return types.DateOf(now)
	}
	return types.DateOf(now.In(loc))
}
