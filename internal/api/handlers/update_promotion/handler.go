package update_promotion

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/promotions"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/promotions/models"
)

const (
	msgInvalidPromotionID = "некорректный ID промокода"
	msgInvalidPromotion   = "некорректные данные промокода"
	msgNotFound           = "промокод не найден"
	msgDuplicateCode      = "промокод с таким кодом уже существует"
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

// Handle PATCH /api/v1/admin/promotions/{promotionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	promotionID, err := handlers.PathInt64(r, "promotionId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPromotionID)
		return
	}

	var req models.UpdatePromotionRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/promotions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	promo, err := h.service.Update(r.Context(), promotionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPromotion)

		case errors.Is(err, promotions.ErrPromotionNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, promotions.ErrDuplicateCode):
			handlers.RespondConflict(w, msgDuplicateCode)

		default:
			h.logger.Error("PATCH /admin/promotions/{id} - Failed: id=%d, error=%v", promotionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/promotions/{id} - Promotion updated: id=%d", promotionID)
	handlers.RespondJSON(w, http.StatusOK, promo)
}
