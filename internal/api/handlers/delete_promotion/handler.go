package delete_promotion

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/promotions"
)

const (
	msgInvalidPromotionID = "некорректный ID промокода"
	msgNotFound           = "промокод не найден"
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

// Handle DELETE /api/v1/admin/promotions/{promotionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	promotionID, err := handlers.PathInt64(r, "promotionId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPromotionID)
		return
	}

	if err := h.service.Delete(r.Context(), promotionID); err != nil {
		if errors.Is(err, promotions.ErrPromotionNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/promotions/{id} - Failed: id=%d, error=%v", promotionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/promotions/{id} - Promotion deleted: id=%d", promotionID)
	w.WriteHeader(http.StatusNoContent)
}
