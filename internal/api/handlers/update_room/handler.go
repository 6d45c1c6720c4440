package update_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms/models"
)

const (
	msgInvalidRoomID   = "некорректный ID номера"
	msgInvalidRoom     = "некорректные данные номера"
	msgNotFound        = "номер не найден"
	msgDuplicateNumber = "номер с таким номером комнаты уже существует"
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

// Handle PATCH /api/v1/admin/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req models.UpdateRoomRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/rooms/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	room, err := h.service.Update(r.Context(), roomID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRoom)

		case errors.Is(err, rooms.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrDuplicateRoomNumber):
			handlers.RespondConflict(w, msgDuplicateNumber)

		default:
			h.logger.Error("PATCH /admin/rooms/{id} - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/rooms/{id} - Room updated: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, room)
}
