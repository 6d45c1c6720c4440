package update_promotion

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/promotions/models"
)

type PromotionService interface {
	Update(ctx context.Context, id int64, req *models.UpdatePromotionRequest) (*models.PromotionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
