package create_promotion

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/promotions"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/promotions/models"
)

const (
	msgInvalidPromotion = "некорректные данные промокода"
	msgDuplicateCode    = "промокод с таким кодом уже существует"
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

// Handle POST /api/v1/admin/promotions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePromotionRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /admin/promotions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	promo, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPromotion)

		case errors.Is(err, promotions.ErrDuplicateCode):
			handlers.RespondConflict(w, msgDuplicateCode)

		default:
			h.logger.Error("POST /admin/promotions - Failed to create promotion: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/promotions - Promotion created: id=%d, code=%s", promo.ID, promo.Code)
	handlers.RespondJSON(w, http.StatusCreated, promo)
}
