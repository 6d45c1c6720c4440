package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms/models"
)

const (
	msgInvalidRoom     = "некорректные данные номера"
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

// Handle POST /api/v1/admin/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /admin/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRoom)

		case errors.Is(err, rooms.ErrDuplicateRoomNumber):
			handlers.RespondConflict(w, msgDuplicateNumber)

		default:
			h.logger.Error("POST /admin/rooms - Failed to create room: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/rooms - Room created: room_id=%d, number=%s", room.ID, room.RoomNumber)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
