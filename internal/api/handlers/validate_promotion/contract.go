package validate_promotion

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/promotions/models"
)

type PromotionService interface {
	Validate(ctx context.Context, code string) (*models.ValidateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
