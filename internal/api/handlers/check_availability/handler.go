package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

const (
	msgInvalidRoomID  = "некорректный ID номера"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDates   = "дата выезда должна быть позже даты заезда"
	msgRoomNotFound   = "номер не найден"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	checkIn, errIn := types.ParseDate(r.URL.Query().Get("checkIn"))
	checkOut, errOut := types.ParseDate(r.URL.Query().Get("checkOut"))
	if errIn != nil || errOut != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid dates: checkIn=%v, checkOut=%v", errIn, errOut)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to check availability: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/availability - room_id=%d, %s..%s, available=%t",
		roomID, checkIn, checkOut, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
