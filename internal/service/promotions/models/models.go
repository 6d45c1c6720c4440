package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// CreatePromotionRequest запрос на создание промокода
type CreatePromotionRequest struct {
	Code               string          `json:"promoCode" validate:"required,max=50"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	StartDate          types.Date      `json:"startDate"`
	EndDate            types.Date      `json:"endDate"`
	IsActive           *bool           `json:"isActive,omitempty"` // по умолчанию true
}

// UpdatePromotionRequest частичное обновление промокода.
// nil поля не меняются.
type UpdatePromotionRequest struct {
	Code               *string          `json:"promoCode,omitempty" validate:"omitempty,max=50"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage,omitempty"`
	StartDate          *types.Date      `json:"startDate,omitempty"`
	EndDate            *types.Date      `json:"endDate,omitempty"`
	IsActive           *bool            `json:"isActive,omitempty"`
}

// PromotionResponse ответ с данными промокода
type PromotionResponse struct {
	ID                 int64           `json:"id"`
	Code               string          `json:"promoCode"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	StartDate          types.Date      `json:"startDate"`
	EndDate            types.Date      `json:"endDate"`
	IsActive           bool            `json:"isActive"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// PromotionListResponse ответ со списком промокодов
type PromotionListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
}

// ValidateResponse результат проверки промокода
type ValidateResponse struct {
	Valid              bool            `json:"valid"`
	Code               string          `json:"promoCode"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	EndDate            types.Date      `json:"endDate"`
}

// FromDomainPromotion конвертирует domain модель в DTO
func FromDomainPromotion(p *domain.Promotion) *PromotionResponse {
	if p == nil {
		return nil
	}
	return &PromotionResponse{
		ID:                 p.ID,
		Code:               p.Code,
		DiscountPercentage: p.DiscountPercentage,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// FromDomainPromotionList конвертирует список domain моделей в DTO
func FromDomainPromotionList(promos []*domain.Promotion) *PromotionListResponse {
	resp := &PromotionListResponse{Promotions: make([]PromotionResponse, 0, len(promos))}
	for _, promo := range promos {
		if p := FromDomainPromotion(promo); p != nil {
			resp.Promotions = append(resp.Promotions, *p)
		}
	}
	return resp
}
