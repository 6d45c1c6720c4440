package get_payment_qr

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
	msgNotApplicable    = "оплата переводом для этого бронирования недоступна"
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

// Handle GET /api/v1/bookings/{bookingId}/payment-qr
// По умолчанию отдаёт JSON с реквизитами и QR в base64; с ?format=png отдаёт картинку.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	instructions, err := h.service.GetPaymentInstructions(r.Context(), bookingID, userID, middleware.IsStaff(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/payment-qr - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrPaymentNotApplicable):
			handlers.RespondBadRequest(w, msgNotApplicable)

		default:
			h.logger.Error("GET /bookings/{id}/payment-qr - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/payment-qr - Instructions issued: booking_id=%d, amount=%d",
		bookingID, instructions.Amount)

	if r.URL.Query().Get("format") == "png" {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(instructions.QRCodePNG)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(instructions.QRCodePNG)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, instructions)
}
