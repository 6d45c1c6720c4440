package check_availability

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
)

// UseCase use case проверки доступности номера
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute проверяет, свободен ли номер на весь период.
// Учитываются только бронирования в статусах pending, confirmed, checked_in.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%d, checkIn=%s, checkOut=%s", req.RoomID, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	period, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование номера
	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Получаем пересекающиеся бронирования
	bookings, err := uc.bookingRepo.ListBlockingByRoom(ctx, req.RoomID, period)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list bookings for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	conflicts := findConflicts(period, bookings)

	uc.logger.Info("CheckAvailability: room=%d %s available=%t conflicts=%d",
		req.RoomID, period, len(conflicts) == 0, len(conflicts))

	return &Response{
		RoomID:    req.RoomID,
		CheckIn:   period.CheckIn,
		CheckOut:  period.CheckOut,
		Nights:    period.Nights(),
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}
