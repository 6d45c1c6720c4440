package check_availability

import (
	checkAvailability "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID    int64              `json:"roomId"`
	CheckIn   types.Date         `json:"checkInDate"`
	CheckOut  types.Date         `json:"checkOutDate"`
	Nights    int                `json:"nights"`
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

// ConflictResponse занятый период
type ConflictResponse struct {
	BookingID int64      `json:"bookingId"`
	CheckIn   types.Date `json:"checkInDate"`
	CheckOut  types.Date `json:"checkOutDate"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	conflicts := make([]ConflictResponse, 0, len(resp.Conflicts))
	for _, c := range resp.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			BookingID: c.BookingID,
			CheckIn:   c.CheckIn,
			CheckOut:  c.CheckOut,
		})
	}

	return &AvailabilityResponse{
		RoomID:    resp.RoomID,
		CheckIn:   resp.CheckIn,
		CheckOut:  resp.CheckOut,
		Nights:    resp.Nights,
		Available: resp.Available,
		Conflicts: conflicts,
	}
}
