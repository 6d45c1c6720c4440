package get_active_promotions

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/promotions/models"
)

type PromotionService interface {
	ListActive(ctx context.Context) (*models.PromotionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
