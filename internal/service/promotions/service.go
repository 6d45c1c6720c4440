package promotions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	promotionRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/promotion"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/promotions/models"
)

// Service сервис для работы с промокодами
type Service struct {
	promotionRepo PromotionRepository
	location      *time.Location
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса промокодов.
// location - часовой пояс отеля, в нём считается "сегодня".
func NewService(promotionRepo PromotionRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		promotionRepo: promotionRepo,
		location:      location,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// List возвращает все промокоды для персонала
func (s *Service) List(ctx context.Context) (*models.PromotionListResponse, error) {
	promos, err := s.promotionRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPromotionList(promos), nil
}

// ListActive возвращает промокоды, которые можно применить сегодня
func (s *Service) ListActive(ctx context.Context) (*models.PromotionListResponse, error) {
	today := domain.Today(s.timeProvider.Now(), s.location)

	promos, err := s.promotionRepo.ListActive(ctx, today)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPromotionList(promos), nil
}

// Validate проверяет, что промокод существует и действует сегодня
func (s *Service) Validate(ctx context.Context, code string) (*models.ValidateResponse, error) {
	normalized := domain.NormalizePromoCode(&code)
	if normalized == nil {
		return nil, fmt.Errorf("%w: promoCode is required", ErrInvalidInput)
	}

	promo, err := s.promotionRepo.GetByCode(ctx, *normalized)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Validate: promo code=%s not found", *normalized)
			return nil, ErrPromotionNotFound
		}
		s.logger.Error("Validate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
	}

	today := domain.Today(s.timeProvider.Now(), s.location)
	if err := promo.CheckRedeemable(today); err != nil {
		s.logger.Warn("Validate: promo code=%s rejected: %v", promo.Code, err)
		return nil, err
	}

	return &models.ValidateResponse{
		Valid:              true,
		Code:               promo.Code,
		DiscountPercentage: promo.DiscountPercentage,
		EndDate:            promo.EndDate,
	}, nil
}

// Create создает промокод. Доступно только персоналу.
func (s *Service) Create(ctx context.Context, req *models.CreatePromotionRequest) (*models.PromotionResponse, error) {
	s.logger.Info("Create: creating promo code=%s", req.Code)

	promo := &domain.Promotion{
		Code:               strings.TrimSpace(req.Code),
		DiscountPercentage: req.DiscountPercentage,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		IsActive:           true,
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	if err := validatePromotion(promo); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.promotionRepo.Create(ctx, promo)
	if err != nil {
		return nil, s.writeError("Create", promo.Code, err)
	}

	s.logger.Info("Create: successfully created promo id=%d", created.ID)
	return models.FromDomainPromotion(created), nil
}

// Update частично обновляет промокод. Доступно только персоналу.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdatePromotionRequest) (*models.PromotionResponse, error) {
	s.logger.Info("Update: updating promo id=%d", id)

	promo, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Update: promo id=%d not found", id)
			return nil, ErrPromotionNotFound
		}
		s.logger.Error("Update: repository error for promo id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Применяем только переданные поля
	if req.Code != nil {
		promo.Code = strings.TrimSpace(*req.Code)
	}
	if req.DiscountPercentage != nil {
		promo.DiscountPercentage = *req.DiscountPercentage
	}
	if req.StartDate != nil {
		promo.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		promo.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	if err := validatePromotion(promo); err != nil {
		s.logger.Warn("Update: validation failed for promo id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.promotionRepo.Update(ctx, promo)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, s.writeError("Update", promo.Code, err)
	}

	s.logger.Info("Update: successfully updated promo id=%d", id)
	return models.FromDomainPromotion(updated), nil
}

// Delete удаляет промокод. Доступно только персоналу.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting promo id=%d", id)

	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Delete: promo id=%d not found", id)
			return ErrPromotionNotFound
		}
		s.logger.Error("Delete: repository error for promo id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted promo id=%d", id)
	return nil
}

func validatePromotion(p *domain.Promotion) error {
	if p.Code == "" || len(p.Code) > domain.MaxPromoCodeLength {
		return fmt.Errorf("%w: promoCode must be 1-%d characters", ErrInvalidInput, domain.MaxPromoCodeLength)
	}
	if !domain.ValidDiscount(p.DiscountPercentage) {
		return fmt.Errorf("%w: discountPercentage must be between %d and %d",
			ErrInvalidInput, domain.MinDiscountPercentage, domain.MaxDiscountPercentage)
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}
	return nil
}

func (s *Service) writeError(op string, code string, err error) error {
	if errors.Is(err, promotionRepo.ErrDuplicateCode) {
		s.logger.Warn("%s: promo code=%s already exists", op, code)
		return ErrDuplicateCode
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
