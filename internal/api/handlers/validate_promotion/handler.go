package validate_promotion

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/promotions"
)

const (
	msgInvalidCode     = "некорректный промокод"
	msgPromoNotFound   = "промокод не найден"
	msgPromoDisabled   = "промокод отключен"
	msgPromoNotStarted = "промокод ещё не действует"
	msgPromoExpired    = "срок действия промокода истёк"
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

// Handle GET /api/v1/promotions/validate/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	result, err := h.service.Validate(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, promotions.ErrPromotionNotFound):
			handlers.RespondNotFound(w, msgPromoNotFound)

		case errors.Is(err, promotions.ErrPromoDisabled):
			handlers.RespondBadRequest(w, msgPromoDisabled)

		case errors.Is(err, promotions.ErrPromoNotStarted):
			handlers.RespondBadRequest(w, msgPromoNotStarted)

		case errors.Is(err, promotions.ErrPromoExpired):
			handlers.RespondBadRequest(w, msgPromoExpired)

		default:
			h.logger.Error("GET /promotions/validate/{code} - Failed: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
