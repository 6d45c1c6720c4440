package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidDates         = "дата выезда должна быть позже даты заезда"
	msgInvalidInput         = "некорректные данные бронирования"
	msgInvalidPaymentMethod = "неподдерживаемый способ оплаты"
	msgRoomNotFound         = "номер не найден"
	msgTooManyGuests        = "количество гостей превышает вместимость номера"
	msgRoomNotAvailable     = "номер занят на выбранные даты"
	msgPromoNotFound        = "промокод не найден"
	msgPromoDisabled        = "промокод отключен"
	msgPromoNotStarted      = "промокод ещё не действует"
	msgPromoExpired         = "срок действия промокода истёк"
	msgUnauthorized         = "пользователь не определён"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRoomNotAvailable):
			h.logger.Warn("POST /bookings - Room not available: user_id=%d, room_id=%d, %s..%s",
				userID, req.RoomID, req.CheckInDate, req.CheckOutDate)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, createBooking.ErrInvalidPaymentMethod):
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		case errors.Is(err, createBooking.ErrGuestsExceedCapacity):
			h.logger.Warn("POST /bookings - Guests exceed capacity: room_id=%d, guests=%d", req.RoomID, req.NumberOfGuests)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createBooking.ErrPromoNotFound):
			handlers.RespondBadRequest(w, msgPromoNotFound)

		case errors.Is(err, createBooking.ErrPromoDisabled):
			handlers.RespondBadRequest(w, msgPromoDisabled)

		case errors.Is(err, createBooking.ErrPromoNotStarted):
			handlers.RespondBadRequest(w, msgPromoNotStarted)

		case errors.Is(err, createBooking.ErrPromoExpired):
			handlers.RespondBadRequest(w, msgPromoExpired)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, room_id=%d",
		result.ID, userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
