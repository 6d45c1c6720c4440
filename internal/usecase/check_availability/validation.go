package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.DateRange, error) {
	if req.RoomID <= 0 {
		return domain.DateRange{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return domain.DateRange{}, fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	return domain.NewDateRange(req.CheckIn, req.CheckOut)
}

// findConflicts отбирает занимающие номер бронирования, пересекающиеся с периодом
func findConflicts(period domain.DateRange, bookings []*domain.Booking) []Conflict {
	conflicts := make([]Conflict, 0)
	for _, b := range bookings {
		if !b.IsBlocking() || !b.Range().Overlaps(period) {
			continue
		}
		conflicts = append(conflicts, Conflict{
			BookingID: b.ID,
			CheckIn:   b.CheckIn,
			CheckOut:  b.CheckOut,
		})
	}
	return conflicts
}
