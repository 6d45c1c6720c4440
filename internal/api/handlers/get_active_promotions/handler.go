package get_active_promotions

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
)

type Handler struct {
	service PromotionService
	logger  Logger
}

func NewHandler(service PromotionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/promotions/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /promotions/active - Failed to list promotions: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Promotions)
}
