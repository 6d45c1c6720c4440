package rooms

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomRepo) List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	args := m.Called(ctx, filter)
	if r := args.Get(0); r != nil {
		return r.([]*domain.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomRepo) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, room)
	if r := args.Get(0); r != nil {
		return r.(*domain.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomRepo) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *mockRoomRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	repo := &mockRoomRepo{}
	svc := NewService(repo, nopLogger{})

	status := domain.RoomAvailable
	repo.On("List", ctx, domain.RoomsFilter{Status: &status, MinCapacity: ptr.Ptr(2)}).
		Return([]*domain.Room{{ID: 1, RoomNumber: "101", Capacity: 2, Status: domain.RoomAvailable}}, nil)

	resp, err := svc.List(ctx, &models.ListRoomsRequest{Status: ptr.Ptr("available"), MinCapacity: ptr.Ptr(2)})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "101", resp.Rooms[0].RoomNumber)

	_, err = svc.List(ctx, &models.ListRoomsRequest{Status: ptr.Ptr("haunted")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(ctx, &models.ListRoomsRequest{MinCapacity: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mockRoomRepo{}
	svc := NewService(repo, nopLogger{})
	repo.On("GetByID", ctx, int64(42)).Return(nil, roomRepo.ErrRoomNotFound)

	_, err := svc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to available", func(t *testing.T) {
		repo := &mockRoomRepo{}
		svc := NewService(repo, nopLogger{})
		repo.On("Create", ctx, mock.MatchedBy(func(r *domain.Room) bool {
			return r.RoomNumber == "201" && r.Status == domain.RoomAvailable
		})).Return(&domain.Room{ID: 5, RoomNumber: "201", Status: domain.RoomAvailable}, nil)

		resp, err := svc.Create(ctx, &models.CreateRoomRequest{
			RoomNumber:    " 201 ",
			RoomType:      "deluxe",
			PricePerNight: decimal.RequireFromString("750000"),
			Capacity:      3,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("duplicate number", func(t *testing.T) {
		repo := &mockRoomRepo{}
		svc := NewService(repo, nopLogger{})
		repo.On("Create", ctx, mock.Anything).Return(nil, roomRepo.ErrDuplicateRoomNumber)

		_, err := svc.Create(ctx, &models.CreateRoomRequest{
			RoomNumber:    "101",
			RoomType:      "standard",
			PricePerNight: decimal.RequireFromString("500000"),
			Capacity:      2,
		})
		assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
	})

	invalid := map[string]models.CreateRoomRequest{
		"zero price":     {RoomNumber: "1", RoomType: "t", PricePerNight: decimal.Zero, Capacity: 2},
		"zero capacity":  {RoomNumber: "1", RoomType: "t", PricePerNight: decimal.NewFromInt(1), Capacity: 0},
		"long number":    {RoomNumber: "12345678901", RoomType: "t", PricePerNight: decimal.NewFromInt(1), Capacity: 2},
		"unknown status": {RoomNumber: "1", RoomType: "t", PricePerNight: decimal.NewFromInt(1), Capacity: 2, Status: ptr.Ptr("closed")},
	}
	for name, req := range invalid {
		t.Run(name, func(t *testing.T) {
			repo := &mockRoomRepo{}
			svc := NewService(repo, nopLogger{})

			_, err := svc.Create(ctx, &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := &mockRoomRepo{}
	svc := NewService(repo, nopLogger{})
	repo.On("UpdateStatus", ctx, int64(1), domain.RoomCleaning).Return(nil)
	repo.On("GetByID", ctx, int64(1)).Return(&domain.Room{ID: 1, Status: domain.RoomCleaning}, nil)
	repo.On("UpdateStatus", ctx, int64(9), domain.RoomCleaning).Return(roomRepo.ErrRoomNotFound)

	resp, err := svc.UpdateStatus(ctx, 1, &models.UpdateRoomStatusRequest{Status: "cleaning"})
	require.NoError(t, err)
	assert.Equal(t, "cleaning", resp.Status)

	_, err = svc.UpdateStatus(ctx, 9, &models.UpdateRoomStatusRequest{Status: "cleaning"})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.UpdateStatus(ctx, 1, &models.UpdateRoomStatusRequest{Status: "gone"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_FreeDuring(t *testing.T) {
	ctx := context.Background()
	repo := &mockRoomRepo{}
	svc := NewService(repo, nopLogger{})

	checkIn := types.MustParseDate("2025-03-01")
	checkOut := types.MustParseDate("2025-07-01")
	period := domain.DateRange{CheckIn: checkIn, CheckOut: checkOut}
	repo.On("List", ctx, domain.RoomsFilter{FreeDuring: &period}).
		Return([]*domain.Room{{ID: 2, RoomNumber: "102"}}, nil)

	resp, err := svc.List(ctx, &models.ListRoomsRequest{CheckIn: &checkIn, CheckOut: &checkOut})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, int64(2), resp.Rooms[0].ID)

	_, err = svc.List(ctx, &models.ListRoomsRequest{CheckIn: &checkIn})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(ctx, &models.ListRoomsRequest{CheckIn: &checkOut, CheckOut: &checkIn})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.Room {
		return &domain.Room{
			ID:            1,
			RoomNumber:    "101",
			RoomType:      "standard",
			PricePerNight: decimal.RequireFromString("500000"),
			Capacity:      2,
			Status:        domain.RoomAvailable,
		}
	}

	t.Run("changes rate and capacity", func(t *testing.T) {
		repo := &mockRoomRepo{}
		svc := NewService(repo, nopLogger{})
		room := existing()
		repo.On("GetByID", ctx, int64(1)).Return(room, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(r *domain.Room) bool {
			return r.RoomNumber == "101" && r.PricePerNight.Equal(decimal.RequireFromString("650000")) && r.Capacity == 3
		})).Return(nil)

		price := decimal.RequireFromString("650000")
		resp, err := svc.Update(ctx, 1, &models.UpdateRoomRequest{PricePerNight: &price, Capacity: ptr.Ptr(3)})
		require.NoError(t, err)
		assert.Equal(t, "650000", resp.PricePerNight.String())
		assert.Equal(t, 3, resp.Capacity)
		assert.Equal(t, "standard", resp.RoomType)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockRoomRepo{}
		svc := NewService(repo, nopLogger{})
		repo.On("GetByID", ctx, int64(9)).Return(nil, roomRepo.ErrRoomNotFound)

		_, err := svc.Update(ctx, 9, &models.UpdateRoomRequest{Capacity: ptr.Ptr(3)})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("invalid price", func(t *testing.T) {
		repo := &mockRoomRepo{}
		svc := NewService(repo, nopLogger{})
		repo.On("GetByID", ctx, int64(1)).Return(existing(), nil)

		price := decimal.RequireFromString("-1")
		_, err := svc.Update(ctx, 1, &models.UpdateRoomRequest{PricePerNight: &price})
		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("duplicate number", func(t *testing.T) {
		repo := &mockRoomRepo{}
		svc := NewService(repo, nopLogger{})
		repo.On("GetByID", ctx, int64(1)).Return(existing(), nil)
		repo.On("Update", ctx, mock.Anything).Return(roomRepo.ErrDuplicateRoomNumber)

		_, err := svc.Update(ctx, 1, &models.UpdateRoomRequest{RoomNumber: ptr.Ptr("102")})
		assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := &mockRoomRepo{}
	svc := NewService(repo, nopLogger{})
	repo.On("Delete", ctx, int64(1)).Return(nil)
	repo.On("Delete", ctx, int64(2)).Return(roomRepo.ErrRoomHasBookings)
	repo.On("Delete", ctx, int64(9)).Return(roomRepo.ErrRoomNotFound)

	assert.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 2), ErrRoomHasBookings)
	assert.ErrorIs(t, svc.Delete(ctx, 9), ErrRoomNotFound)
}
