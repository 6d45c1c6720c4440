package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms/models"
)

// Service сервис для работы с номерами
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List возвращает номера с фильтрацией по статусу, вместимости и свободному периоду
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	filter := domain.RoomsFilter{MinCapacity: req.MinCapacity}

	if req.Status != nil {
		status := domain.RoomStatus(*req.Status)
		if !status.IsValid() {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}
	if req.MinCapacity != nil && *req.MinCapacity < domain.MinGuests {
		return nil, fmt.Errorf("%w: minCapacity must be positive", ErrInvalidInput)
	}

	if req.CheckIn != nil || req.CheckOut != nil {
		if req.CheckIn == nil || req.CheckOut == nil {
			return nil, fmt.Errorf("%w: checkIn and checkOut must be set together", ErrInvalidInput)
		}
		period, err := domain.NewDateRange(*req.CheckIn, *req.CheckOut)
		if err != nil {
			s.logger.Warn("List: invalid period: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.FreeDuring = &period
	}

	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repositoryError("GetByID", id, err)
	}
	return models.FromDomainRoom(room), nil
}

// Create создает номер. Доступно только персоналу.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room number=%s type=%s", req.RoomNumber, req.RoomType)

	room, err := newRoom(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateRoomNumber) {
			s.logger.Warn("Create: room number=%s already exists", room.RoomNumber)
			return nil, ErrDuplicateRoomNumber
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// UpdateStatus меняет информационный статус номера.
// На доступность дат статус не влияет.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateRoomStatusRequest) (*models.RoomResponse, error) {
	s.logger.Info("UpdateStatus: room id=%d to status=%s", id, req.Status)

	status := domain.RoomStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.roomRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, s.repositoryError("UpdateStatus", id, err)
	}

	return s.GetByID(ctx, id)
}

// Update частично обновляет номер. Новая цена действует только для новых бронирований:
// существующие хранят рассчитанную стоимость.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repositoryError("Update", id, err)
	}

	if req.RoomNumber != nil {
		room.RoomNumber = strings.TrimSpace(*req.RoomNumber)
	}
	if req.RoomType != nil {
		room.RoomType = strings.TrimSpace(*req.RoomType)
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Description != nil {
		room.Description = req.Description
	}

	if err := validateRoom(room); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateRoomNumber) {
			s.logger.Warn("Update: room number=%s already exists", room.RoomNumber)
			return nil, ErrDuplicateRoomNumber
		}
		return nil, s.repositoryError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated room id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete удаляет номер без бронирований
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting room id=%d", id)

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrRoomHasBookings) {
			s.logger.Warn("Delete: room id=%d has bookings", id)
			return ErrRoomHasBookings
		}
		return s.repositoryError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted room id=%d", id)
	return nil
}

func newRoom(req *models.CreateRoomRequest) (*domain.Room, error) {
	status := domain.RoomAvailable
	if req.Status != nil {
		status = domain.RoomStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
	}

	room := &domain.Room{
		RoomNumber:    strings.TrimSpace(req.RoomNumber),
		RoomType:      strings.TrimSpace(req.RoomType),
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		Description:   req.Description,
		Status:        status,
	}
	if err := validateRoom(room); err != nil {
		return nil, err
	}
	return room, nil
}

func validateRoom(room *domain.Room) error {
	if room.RoomNumber == "" || len(room.RoomNumber) > domain.MaxRoomNumberLength {
		return fmt.Errorf("%w: roomNumber must be 1-%d characters", ErrInvalidInput, domain.MaxRoomNumberLength)
	}
	if room.RoomType == "" {
		return fmt.Errorf("%w: roomType is required", ErrInvalidInput)
	}
	if !room.PricePerNight.IsPositive() {
		return fmt.Errorf("%w: pricePerNight must be positive", ErrInvalidInput)
	}
	if room.Capacity < domain.MinGuests || room.Capacity > domain.MaxGuests {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
	}
	return nil
}

func (s *Service) repositoryError(op string, id int64, err error) error {
	if errors.Is(err, roomRepo.ErrRoomNotFound) {
		s.logger.Warn("%s: room id=%d not found", op, id)
		return ErrRoomNotFound
	}
	s.logger.Error("%s: repository error for room id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
