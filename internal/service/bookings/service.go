package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/eventbus"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/paymentqr"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	publisher    EventPublisher
	account      PaymentAccount
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	account PaymentAccount,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		publisher:    publisher,
		account:      account,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID.
// Клиент видит только свои бронирования, персонал - любые.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isStaff bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getAccessible(ctx, "GetByID", id, userID, isStaff)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя, сначала новые.
// Опционально фильтрует по статусу.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	filter := domain.BookingsFilter{UserID: &req.UserID}
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetAllBookings получает бронирования для персонала с фильтрацией по статусу, номеру и дате
func (s *Service) GetAllBookings(ctx context.Context, req *models.GetAllBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "GetAllBookings: fetching bookings"
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.RoomID != nil {
		logMsg += fmt.Sprintf(", room=%d", *req.RoomID)
	}
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date)
	}
	s.logger.Info("%s", logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAllBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Клиент может отменить только своё бронирование, персонал - любое.
// Отмена допустима только из pending и confirmed.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d, staff=%t", bookingID, req.UserID, req.IsStaff)

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getAccessible(txCtx, "Cancel", bookingID, req.UserID, req.IsStaff)
		if err != nil {
			return err
		}

		if err := booking.TransitionTo(domain.StatusCancelled); err != nil {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled: %v", bookingID, err)
			return err
		}

		if err := s.bookingRepo.Cancel(txCtx, bookingID); err != nil {
			return s.repositoryError("Cancel", bookingID, err)
		}

		now := s.timeProvider.Now()
		booking.CancelledAt = &now
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	s.publisher.PublishWithGracefulDegradation(ctx,
		eventbus.NewBookingEvent(eventbus.EventBookingCancelled, result, s.timeProvider.Now()))

	return models.FromDomainBooking(result), nil
}

// UpdateStatus переводит бронирование в новый статус по конечному автомату.
// Доступно только персоналу.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	if !req.IsStaff {
		s.logger.Warn("UpdateStatus: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var result *domain.Booking

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.get(txCtx, "UpdateStatus", bookingID)
		if err != nil {
			return err
		}

		if err := booking.TransitionTo(newStatus); err != nil {
			s.logger.Warn("UpdateStatus: booking id=%d: %v", bookingID, err)
			return err
		}

		if newStatus == domain.StatusCancelled {
			err = s.bookingRepo.Cancel(txCtx, bookingID)
		} else {
			err = s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus)
		}
		if err != nil {
			return s.repositoryError("UpdateStatus", bookingID, err)
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	s.publisher.PublishWithGracefulDegradation(ctx,
		eventbus.NewBookingEvent(eventbus.EventBookingStatusChanged, result, s.timeProvider.Now()))

	return models.FromDomainBooking(result), nil
}

// UpdatePaymentStatus отмечает оплату. Доступно только персоналу.
// Оплата брони в статусе pending автоматически подтверждает её.
func (s *Service) UpdatePaymentStatus(ctx context.Context, bookingID int64, req *models.UpdatePaymentStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdatePaymentStatus: updating booking id=%d to payment status=%s by user=%d",
		bookingID, req.PaymentStatus, req.UserID)

	if !req.IsStaff {
		s.logger.Warn("UpdatePaymentStatus: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	newStatus, err := models.ToDomainPaymentStatus(req.PaymentStatus)
	if err != nil {
		s.logger.Warn("UpdatePaymentStatus: invalid payment status=%s for booking id=%d", req.PaymentStatus, bookingID)
		return nil, fmt.Errorf("%w: invalid payment status", ErrInvalidInput)
	}

	var (
		result        *domain.Booking
		autoConfirmed bool
	)

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.get(txCtx, "UpdatePaymentStatus", bookingID)
		if err != nil {
			return err
		}

		autoConfirmed, err = booking.ApplyPaymentStatus(newStatus)
		if err != nil {
			s.logger.Warn("UpdatePaymentStatus: booking id=%d: %v", bookingID, err)
			return err
		}

		if err := s.bookingRepo.UpdatePayment(txCtx, bookingID, booking.PaymentStatus, booking.Status); err != nil {
			return s.repositoryError("UpdatePaymentStatus", bookingID, err)
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdatePaymentStatus: booking id=%d marked %s, autoConfirmed=%t", bookingID, newStatus, autoConfirmed)

	now := s.timeProvider.Now()
	s.publisher.PublishWithGracefulDegradation(ctx, eventbus.NewBookingEvent(eventbus.EventBookingPaid, result, now))
	if autoConfirmed {
		s.publisher.PublishWithGracefulDegradation(ctx, eventbus.NewBookingEvent(eventbus.EventBookingStatusChanged, result, now))
	}

	return models.FromDomainBooking(result), nil
}

// GetPaymentStatus возвращает статус оплаты и статус бронирования
func (s *Service) GetPaymentStatus(ctx context.Context, bookingID int64, userID int64, isStaff bool) (*models.PaymentStatusResponse, error) {
	booking, err := s.getAccessible(ctx, "GetPaymentStatus", bookingID, userID, isStaff)
	if err != nil {
		return nil, err
	}

	return &models.PaymentStatusResponse{
		BookingID:     booking.ID,
		PaymentStatus: string(booking.PaymentStatus),
		BookingStatus: string(booking.Status),
	}, nil
}

// GetPaymentInstructions возвращает реквизиты для банковского перевода и QR-код с ними
func (s *Service) GetPaymentInstructions(ctx context.Context, bookingID int64, userID int64, isStaff bool) (*models.PaymentInstructionsResponse, error) {
	s.logger.Info("GetPaymentInstructions: booking id=%d for user=%d", bookingID, userID)

	booking, err := s.getAccessible(ctx, "GetPaymentInstructions", bookingID, userID, isStaff)
	if err != nil {
		return nil, err
	}

	if booking.PaymentMethod != domain.PaymentBankTransfer ||
		booking.PaymentStatus == domain.PaymentPaid ||
		booking.Status == domain.StatusCancelled {
		s.logger.Warn("GetPaymentInstructions: booking id=%d method=%s payment=%s status=%s",
			bookingID, booking.PaymentMethod, booking.PaymentStatus, booking.Status)
		return nil, ErrPaymentNotApplicable
	}

	transfer := paymentqr.Transfer{
		BankName:      s.account.BankName,
		AccountNumber: s.account.AccountNumber,
		AccountName:   s.account.AccountName,
		Amount:        booking.TotalPrice.Round(0).IntPart(),
		Memo:          fmt.Sprintf("%s %d", s.account.MemoPrefix, booking.ID),
	}

	png, err := paymentqr.Generate(transfer.Content(), s.account.QRSize)
	if err != nil {
		s.logger.Error("GetPaymentInstructions: failed to generate QR for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetPaymentInstructions - qr: %v", ErrInternal, err)
	}

	return &models.PaymentInstructionsResponse{
		BookingID:     booking.ID,
		BankName:      transfer.BankName,
		AccountNumber: transfer.AccountNumber,
		AccountName:   transfer.AccountName,
		Amount:        transfer.Amount,
		Memo:          transfer.Memo,
		QRCodePNG:     png,
	}, nil
}

// Вспомогательные методы

// get получает бронирование и переводит ошибки репозитория
func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repositoryError(op, id, err)
	}
	return booking, nil
}

// getAccessible получает бронирование с проверкой прав: владелец или персонал
func (s *Service) getAccessible(ctx context.Context, op string, id int64, userID int64, isStaff bool) (*domain.Booking, error) {
	booking, err := s.get(ctx, op, id)
	if err != nil {
		return nil, err
	}

	if !isStaff && booking.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to booking id=%d", op, userID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

func (s *Service) repositoryError(op string, id int64, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%d not found", op, id)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
