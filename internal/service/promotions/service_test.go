package promotions

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	promotionRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/promotion"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/promotions/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

type mockPromotionRepo struct {
	mock.Mock
}

func (m *mockPromotionRepo) Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	args := m.Called(ctx, promo)
	if p := args.Get(0); p != nil {
		return p.(*domain.Promotion), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPromotionRepo) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Promotion), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPromotionRepo) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	args := m.Called(ctx, code)
	if p := args.Get(0); p != nil {
		return p.(*domain.Promotion), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPromotionRepo) List(ctx context.Context) ([]*domain.Promotion, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*domain.Promotion), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPromotionRepo) ListActive(ctx context.Context, today types.Date) ([]*domain.Promotion, error) {
	args := m.Called(ctx, today)
	if p := args.Get(0); p != nil {
		return p.([]*domain.Promotion), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPromotionRepo) Update(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	args := m.Called(ctx, promo)
	if p := args.Get(0); p != nil {
		return p.(*domain.Promotion), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPromotionRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *mockPromotionRepo) *Service {
	loc := time.FixedZone("ICT", 7*60*60)
	svc := NewService(repo, loc, nopLogger{})
	// 2025-06-30 20:00 UTC это уже 1 июля по времени отеля
	svc.timeProvider = fixedTime{t: time.Date(2025, 6, 30, 20, 0, 0, 0, time.UTC)}
	return svc
}

func summerPromo() *domain.Promotion {
	return &domain.Promotion{
		ID:                 3,
		Code:               "SUMMER20",
		DiscountPercentage: decimal.NewFromInt(20),
		StartDate:          types.MustParseDate("2025-07-01"),
		EndDate:            types.MustParseDate("2025-08-31"),
		IsActive:           true,
	}
}

func TestService_ListActive_UsesHotelToday(t *testing.T) {
	ctx := context.Background()
	repo := &mockPromotionRepo{}
	svc := newTestService(repo)
	repo.On("ListActive", ctx, types.MustParseDate("2025-07-01")).Return([]*domain.Promotion{summerPromo()}, nil)

	resp, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Promotions, 1)
	assert.Equal(t, "SUMMER20", resp.Promotions[0].Code)
}

func TestService_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid on start date", func(t *testing.T) {
		repo := &mockPromotionRepo{}
		svc := newTestService(repo)
		repo.On("GetByCode", ctx, "SUMMER20").Return(summerPromo(), nil)

		resp, err := svc.Validate(ctx, "  SUMMER20 ")
		require.NoError(t, err)
		assert.True(t, resp.Valid)
		assert.True(t, decimal.NewFromInt(20).Equal(resp.DiscountPercentage))
	})

	t.Run("unknown", func(t *testing.T) {
		repo := &mockPromotionRepo{}
		svc := newTestService(repo)
		repo.On("GetByCode", ctx, "NOPE").Return(nil, promotionRepo.ErrPromotionNotFound)

		_, err := svc.Validate(ctx, "NOPE")
		assert.ErrorIs(t, err, ErrPromotionNotFound)
	})

	t.Run("disabled wins over dates", func(t *testing.T) {
		repo := &mockPromotionRepo{}
		svc := newTestService(repo)
		promo := summerPromo()
		promo.IsActive = false
		promo.EndDate = types.MustParseDate("2025-01-01")
		promo.StartDate = types.MustParseDate("2024-12-01")
		repo.On("GetByCode", ctx, "SUMMER20").Return(promo, nil)

		_, err := svc.Validate(ctx, "SUMMER20")
		assert.ErrorIs(t, err, ErrPromoDisabled)
	})

	t.Run("expired", func(t *testing.T) {
		repo := &mockPromotionRepo{}
		svc := newTestService(repo)
		promo := summerPromo()
		promo.StartDate = types.MustParseDate("2025-06-01")
		promo.EndDate = types.MustParseDate("2025-06-30")
		repo.On("GetByCode", ctx, "SUMMER20").Return(promo, nil)

		_, err := svc.Validate(ctx, "SUMMER20")
		assert.ErrorIs(t, err, ErrPromoExpired)
	})

	t.Run("blank code", func(t *testing.T) {
		svc := newTestService(&mockPromotionRepo{})

		_, err := svc.Validate(ctx, "   ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	base := models.CreatePromotionRequest{
		Code:               "WINTER10",
		DiscountPercentage: decimal.NewFromInt(10),
		StartDate:          types.MustParseDate("2025-12-01"),
		EndDate:            types.MustParseDate("2025-12-31"),
	}

	t.Run("active by default", func(t *testing.T) {
		repo := &mockPromotionRepo{}
		svc := newTestService(repo)
		repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Promotion) bool {
			return p.Code == "WINTER10" && p.IsActive
		})).Return(&domain.Promotion{ID: 9, Code: "WINTER10", IsActive: true}, nil)

		req := base
		resp, err := svc.Create(ctx, &req)
		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.ID)
	})

	t.Run("duplicate code", func(t *testing.T) {
		repo := &mockPromotionRepo{}
		svc := newTestService(repo)
		repo.On("Create", ctx, mock.Anything).Return(nil, promotionRepo.ErrDuplicateCode)

		req := base
		_, err := svc.Create(ctx, &req)
		assert.ErrorIs(t, err, ErrDuplicateCode)
	})

	t.Run("single day window is allowed", func(t *testing.T) {
		repo := &mockPromotionRepo{}
		svc := newTestService(repo)
		repo.On("Create", ctx, mock.Anything).Return(&domain.Promotion{ID: 10}, nil)

		req := base
		req.EndDate = req.StartDate
		_, err := svc.Create(ctx, &req)
		assert.NoError(t, err)
	})

	invalid := map[string]func(r *models.CreatePromotionRequest){
		"discount above 100": func(r *models.CreatePromotionRequest) { r.DiscountPercentage = decimal.NewFromInt(101) },
		"negative discount":  func(r *models.CreatePromotionRequest) { r.DiscountPercentage = decimal.NewFromInt(-1) },
		"end before start":   func(r *models.CreatePromotionRequest) { r.EndDate = types.MustParseDate("2025-11-30") },
		"empty code":         func(r *models.CreatePromotionRequest) { r.Code = " " },
	}
	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			repo := &mockPromotionRepo{}
			svc := newTestService(repo)

			req := base
			mutate(&req)
			_, err := svc.Create(ctx, &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Update_Partial(t *testing.T) {
	ctx := context.Background()
	repo := &mockPromotionRepo{}
	svc := newTestService(repo)

	repo.On("GetByID", ctx, int64(3)).Return(summerPromo(), nil)
	repo.On("Update", ctx, mock.MatchedBy(func(p *domain.Promotion) bool {
		return !p.IsActive && p.Code == "SUMMER20" && p.DiscountPercentage.Equal(decimal.NewFromInt(20))
	})).Return(&domain.Promotion{ID: 3, Code: "SUMMER20", IsActive: false}, nil)

	resp, err := svc.Update(ctx, 3, &models.UpdatePromotionRequest{IsActive: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	repo.On("GetByID", ctx, int64(4)).Return(nil, promotionRepo.ErrPromotionNotFound)
	_, err = svc.Update(ctx, 4, &models.UpdatePromotionRequest{IsActive: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrPromotionNotFound)
}

func TestService_Update_RejectsInvertedWindow(t *testing.T) {
	ctx := context.Background()
	repo := &mockPromotionRepo{}
	svc := newTestService(repo)
	repo.On("GetByID", ctx, int64(3)).Return(summerPromo(), nil)

	end := types.MustParseDate("2025-06-01")
	_, err := svc.Update(ctx, 3, &models.UpdatePromotionRequest{EndDate: &end})
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := &mockPromotionRepo{}
	svc := newTestService(repo)
	repo.On("Delete", ctx, int64(3)).Return(nil)
	repo.On("Delete", ctx, int64(99)).Return(promotionRepo.ErrPromotionNotFound)

	assert.NoError(t, svc.Delete(ctx, 3))
	assert.ErrorIs(t, svc.Delete(ctx, 99), ErrPromotionNotFound)
}
