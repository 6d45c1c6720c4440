package delete_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgNotFound      = "номер не найден"
	msgHasBookings   = "нельзя удалить номер, на который есть бронирования"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	if err := h.service.Delete(r.Context(), roomID); err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrRoomHasBookings):
			handlers.RespondConflict(w, msgHasBookings)

		default:
			h.logger.Error("DELETE /admin/rooms/{id} - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/rooms/{id} - Room deleted: room_id=%d", roomID)
	w.WriteHeader(http.StatusNoContent)
}
