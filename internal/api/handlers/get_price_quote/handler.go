package get_price_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	getPriceQuote "github.com/m04kA/SMC-HotelBookingService/internal/usecase/get_price_quote"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

const (
	msgInvalidRoomID   = "некорректный ID номера"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDates    = "дата выезда должна быть позже даты заезда"
	msgRoomNotFound    = "номер не найден"
	msgPromoNotFound   = "промокод не найден"
	msgPromoDisabled   = "промокод отключен"
	msgPromoNotStarted = "промокод ещё не действует"
	msgPromoExpired    = "срок действия промокода истёк"
	msgInvalidRequest  = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetPriceQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetPriceQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/price-quote?checkIn=&checkOut=&promoCode=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/price-quote - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	checkIn, errIn := types.ParseDate(r.URL.Query().Get("checkIn"))
	checkOut, errOut := types.ParseDate(r.URL.Query().Get("checkOut"))
	if errIn != nil || errOut != nil {
		h.logger.Warn("GET /rooms/{id}/price-quote - Invalid dates: checkIn=%v, checkOut=%v", errIn, errOut)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getPriceQuote.Request{
		RoomID:    roomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		PromoCode: handlers.QueryString(r, "promoCode"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getPriceQuote.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/price-quote - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getPriceQuote.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, getPriceQuote.ErrPromoNotFound):
			handlers.RespondBadRequest(w, msgPromoNotFound)

		case errors.Is(err, getPriceQuote.ErrPromoDisabled):
			handlers.RespondBadRequest(w, msgPromoDisabled)

		case errors.Is(err, getPriceQuote.ErrPromoNotStarted):
			handlers.RespondBadRequest(w, msgPromoNotStarted)

		case errors.Is(err, getPriceQuote.ErrPromoExpired):
			handlers.RespondBadRequest(w, msgPromoExpired)

		case errors.Is(err, getPriceQuote.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /rooms/{id}/price-quote - Failed to quote price: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
