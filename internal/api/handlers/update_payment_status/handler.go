package update_payment_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID         = "некорректный ID бронирования"
	msgInvalidPaymentStatus     = "некорректный статус оплаты"
	msgNotFound                 = "бронирование не найдено"
	msgForbidden                = "доступ только для персонала"
	msgInvalidPaymentTransition = "недопустимая смена статуса оплаты"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/payment-status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdatePaymentStatusRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/payment-status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentStatus)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())
	booking, err := h.service.UpdatePaymentStatus(r.Context(), bookingID,
		req.ToServiceRequest(userID, middleware.IsStaff(r.Context())))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPaymentStatus)

		case errors.Is(err, bookings.ErrInvalidPaymentTransition):
			h.logger.Warn("PATCH /admin/bookings/{id}/payment-status - Invalid transition: booking_id=%d, status=%s",
				bookingID, req.PaymentStatus)
			handlers.RespondConflict(w, msgInvalidPaymentTransition)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/payment-status - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/payment-status - Payment updated: booking_id=%d, payment=%s, status=%s",
		bookingID, booking.PaymentStatus, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
