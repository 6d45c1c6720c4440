package list_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

const msgInvalidFilter = "некорректные параметры фильтра"

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

// Handle GET /api/v1/rooms?status=&minCapacity=&checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRoomsRequest{Status: handlers.QueryString(r, "status")}

	if raw := r.URL.Query().Get("minCapacity"); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.MinCapacity = &capacity
	}

	for name, dst := range map[string]**types.Date{"checkIn": &req.CheckIn, "checkOut": &req.CheckOut} {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		date, err := types.ParseDate(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		*dst = &date
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, rooms.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /rooms - Failed to list rooms: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Rooms)
}
