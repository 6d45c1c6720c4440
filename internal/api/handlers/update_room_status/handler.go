package update_room_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms/models"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgInvalidStatus = "некорректный статус номера"
	msgNotFound      = "номер не найден"
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

// Handle PATCH /api/v1/admin/rooms/{roomId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req models.UpdateRoomStatusRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	room, err := h.service.UpdateStatus(r.Context(), roomID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, rooms.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/rooms/{id}/status - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/rooms/{id}/status - Room status updated: room_id=%d, status=%s", roomID, room.Status)
	handlers.RespondJSON(w, http.StatusOK, room)
}
