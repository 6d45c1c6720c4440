package update_payment_status

import "github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"

// UpdatePaymentStatusRequest HTTP request model
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=unpaid pending paid"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdatePaymentStatusRequest) ToServiceRequest(userID int64, isStaff bool) *models.UpdatePaymentStatusRequest {
	return &models.UpdatePaymentStatusRequest{
		UserID:        userID,
		IsStaff:       isStaff,
		PaymentStatus: r.PaymentStatus,
	}
}
