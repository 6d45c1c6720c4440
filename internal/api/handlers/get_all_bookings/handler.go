package get_all_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus = "некорректный статус бронирования"
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

// Handle GET /api/v1/admin/bookings?status=&roomId=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	serviceReq := &models.GetAllBookingsRequest{
		Status: handlers.QueryString(r, "status"),
	}

	if raw := query.Get("roomId"); raw != "" {
		roomID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || roomID <= 0 {
			h.logger.Warn("GET /admin/bookings - Invalid room ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidRoomID)
			return
		}
		serviceReq.RoomID = &roomID
	}

	if raw := query.Get("date"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.Date = &date
	}

	result, err := h.service.GetAllBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to get bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
