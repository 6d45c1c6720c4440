package update_booking_status

import "github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked_in checked_out cancelled"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID int64, isStaff bool) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID:  userID,
		IsStaff: isStaff,
		Status:  r.Status,
	}
}
