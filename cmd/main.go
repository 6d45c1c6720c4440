package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_booking"
	createPromotionHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_promotion"
	createRoomHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_room"
	deletePromotionHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/delete_promotion"
	deleteRoomHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/delete_room"
	getActivePromotionsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_active_promotions"
	getAllBookingsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_all_bookings"
	getBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_booking"
	getPaymentQRHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_payment_qr"
	getPaymentStatusHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_payment_status"
	getPriceQuoteHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_price_quote"
	getRoomHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_room"
	getUserBookingsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_user_bookings"
	listPromotionsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/list_promotions"
	listRoomsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/list_rooms"
	updateBookingStatusHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/update_booking_status"
	updatePaymentStatusHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/update_payment_status"
	updatePromotionHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/update_promotion"
	updateRoomHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/update_room"
	updateRoomStatusHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/update_room_status"
	validatePromotionHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/validate_promotion"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	promotionRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/promotion"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/eventbus"
	bookingsService "github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	promotionsService "github.com/m04kA/SMC-HotelBookingService/internal/service/promotions"
	roomsService "github.com/m04kA/SMC-HotelBookingService/internal/service/rooms"
	checkAvailabilityUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
	getPriceQuoteUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/get_price_quote"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/metrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/roomlock"
	"github.com/m04kA/SMC-HotelBookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-HotelBookingService...")

	hotelLocation, err := cfg.Hotel.Location()
	if err != nil {
		log.Fatal("Failed to load hotel timezone %q: %v", cfg.Hotel.Timezone, err)
	}
	log.Info("Hotel timezone: %s", hotelLocation)

	// Инициализируем метрики (если включены).
	// При выключенных метриках collector остаётся nil, его методы это допускают.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	promotionRepository := promotionRepo.NewRepository(wrappedDB)

	// Блокировка номера на время создания бронирования
	var locker createBookingUC.RoomLocker
	switch cfg.Lock.Backend {
	case config.LockBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
		}

		locker = roomlock.NewRedis(redisClient, roomlock.RedisOptions{
			Prefix:      cfg.Redis.KeyPrefix,
			TTL:         cfg.Lock.TTL(),
			WaitTimeout: cfg.Lock.WaitTimeout(),
		})
		log.Info("Room lock: redis (addr=%s, prefix=%s)", cfg.Redis.Addr, cfg.Redis.KeyPrefix)
	default:
		locker = roomlock.NewLocal()
		log.Info("Room lock: in-process")
	}

	// Публикация событий бронирований
	var publisher bookingsService.EventPublisher = eventbus.Noop{}
	if cfg.RabbitMQ.Enabled {
		client, err := eventbus.NewClient(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Exchange,
			time.Duration(cfg.RabbitMQ.Timeout)*time.Second,
			log,
		)
		if err != nil {
			// Бронирование работает и без брокера
			log.Error("RabbitMQ unavailable, events disabled: %v", err)
		} else {
			defer client.Close()
			publisher = client
			log.Info("Event publishing enabled (exchange=%s)", cfg.RabbitMQ.Exchange)
		}
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		publisher,
		bookingsService.PaymentAccount{
			BankName:      cfg.Payment.BankName,
			AccountNumber: cfg.Payment.AccountNumber,
			AccountName:   cfg.Payment.AccountName,
			MemoPrefix:    cfg.Payment.MemoPrefix,
			QRSize:        cfg.Payment.QRSize,
		},
		log,
	)
	roomSvc := roomsService.NewService(roomRepository, log)
	promotionSvc := promotionsService.NewService(promotionRepository, hotelLocation, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		roomRepository,
		bookingRepository,
		log,
	)
	getPriceQuoteUseCase := getPriceQuoteUC.NewUseCase(
		roomRepository,
		promotionRepository,
		metricsCollector,
		hotelLocation,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		promotionRepository,
		locker,
		txMgr,
		publisher,
		metricsCollector,
		hotelLocation,
		log,
	)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getPriceQuote := getPriceQuoteHandler.NewHandler(getPriceQuoteUseCase, log)
	getActivePromotions := getActivePromotionsHandler.NewHandler(promotionSvc, log)
	validatePromotion := validatePromotionHandler.NewHandler(promotionSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getPaymentStatus := getPaymentStatusHandler.NewHandler(bookingSvc, log)
	getPaymentQR := getPaymentQRHandler.NewHandler(bookingSvc, log)

	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	updatePaymentStatus := updatePaymentStatusHandler.NewHandler(bookingSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)
	updateRoomStatus := updateRoomStatusHandler.NewHandler(roomSvc, log)
	listPromotions := listPromotionsHandler.NewHandler(promotionSvc, log)
	createPromotion := createPromotionHandler.NewHandler(promotionSvc, log)
	updatePromotion := updatePromotionHandler.NewHandler(promotionSvc, log)
	deletePromotion := deletePromotionHandler.NewHandler(promotionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/price-quote", getPriceQuote.Handle).Methods(http.MethodGet)
	api.HandleFunc("/promotions/active", getActivePromotions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/promotions/validate/{code}", validatePromotion.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// /bookings/my регистрируется раньше /bookings/{bookingId}
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/my", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/payment-status", getPaymentStatus.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/payment-qr", getPaymentQR.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (X-User-ID + X-User-Role: staff|admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireStaff)

	admin.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/payment-status", updatePaymentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/rooms/{roomId}/status", updateRoomStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/promotions", listPromotions.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/promotions", createPromotion.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/promotions/{promotionId}", updatePromotion.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/promotions/{promotionId}", deletePromotion.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
