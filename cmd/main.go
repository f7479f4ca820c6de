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

	cancelBookingHandler "github.com/courtside/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/courtside/booking-service/internal/api/handlers/create_booking"
	createPricingRuleHandler "github.com/courtside/booking-service/internal/api/handlers/create_pricing_rule"
	getAvailableSlotsHandler "github.com/courtside/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/courtside/booking-service/internal/api/handlers/get_booking"
	getCoachAvailabilityHandler "github.com/courtside/booking-service/internal/api/handlers/get_coach_availability"
	getRecentBookingsHandler "github.com/courtside/booking-service/internal/api/handlers/get_recent_bookings"
	getUserBookingsHandler "github.com/courtside/booking-service/internal/api/handlers/get_user_bookings"
	listCourtsHandler "github.com/courtside/booking-service/internal/api/handlers/list_courts"
	listEquipmentHandler "github.com/courtside/booking-service/internal/api/handlers/list_equipment"
	listPricingRulesHandler "github.com/courtside/booking-service/internal/api/handlers/list_pricing_rules"
	quotePriceHandler "github.com/courtside/booking-service/internal/api/handlers/quote_price"
	updateBookingStatusHandler "github.com/courtside/booking-service/internal/api/handlers/update_booking_status"
	updatePricingRuleHandler "github.com/courtside/booking-service/internal/api/handlers/update_pricing_rule"
	"github.com/courtside/booking-service/internal/api/middleware"
	"github.com/courtside/booking-service/internal/config"
	"github.com/courtside/booking-service/internal/domain"
	"github.com/courtside/booking-service/internal/infra/events"
	bookingRepo "github.com/courtside/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/courtside/booking-service/internal/infra/storage/catalog"
	pricingRuleRepo "github.com/courtside/booking-service/internal/infra/storage/pricingrule"
	bookingsService "github.com/courtside/booking-service/internal/service/bookings"
	catalogService "github.com/courtside/booking-service/internal/service/catalog"
	pricingRulesService "github.com/courtside/booking-service/internal/service/pricingrules"
	createBookingUC "github.com/courtside/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/courtside/booking-service/internal/usecase/get_available_slots"
	getCoachAvailabilityUC "github.com/courtside/booking-service/internal/usecase/get_coach_availability"
	quotePriceUC "github.com/courtside/booking-service/internal/usecase/quote_price"
	"github.com/courtside/booking-service/pkg/dbmetrics"
	"github.com/courtside/booking-service/pkg/logger"
	"github.com/courtside/booking-service/pkg/metrics"
	"github.com/courtside/booking-service/pkg/simpletxmanager"
	"github.com/courtside/booking-service/pkg/txmanager"
)

// EventPublisher объединяет события, которые публикует сервис
type EventPublisher interface {
	BookingCreated(ctx context.Context, booking *domain.Booking) error
	BookingCancelled(ctx context.Context, booking *domain.Booking) error
}

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

	log.Info("Starting courtside booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем публикацию событий
	var eventPublisher EventPublisher
	if cfg.Events.Enabled {
		publisher, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to message broker: %v", err)
		}
		defer publisher.Close()
		eventPublisher = publisher
		log.Info("Event publishing enabled (exchange=%s)", cfg.Events.Exchange)
	} else {
		eventPublisher = events.NewNopPublisher()
		log.Info("Event publishing disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		catalogRepository     *catalogRepo.Repository
		pricingRuleRepository *pricingRuleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		pricingRuleRepository = pricingRuleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		pricingRuleRepository = pricingRuleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		eventPublisher,
		log,
	)
	pricingRulesSvc := pricingRulesService.NewService(
		pricingRuleRepository,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		pricingRuleRepository,
		txMgr,
		eventPublisher,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		log,
	)
	quotePriceUseCase := quotePriceUC.NewUseCase(
		catalogRepository,
		pricingRuleRepository,
		log,
	)
	getCoachAvailabilityUseCase := getCoachAvailabilityUC.NewUseCase(
		catalogRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getCoachAvailability := getCoachAvailabilityHandler.NewHandler(getCoachAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getRecentBookings := getRecentBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	listCourts := listCourtsHandler.NewHandler(catalogSvc, log)
	listEquipment := listEquipmentHandler.NewHandler(catalogSvc, log)
	listPricingRules := listPricingRulesHandler.NewHandler(pricingRulesSvc, log)
	createPricingRule := createPricingRuleHandler.NewHandler(pricingRulesSvc, log)
	updatePricingRule := updatePricingRuleHandler.NewHandler(pricingRulesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог кортов и инвентаря
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment", listEquipment.Handle).Methods(http.MethodGet)

	// Сетка доступности корта на дату
	api.HandleFunc("/courts/{courtId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расчет цены без создания бронирования
	api.HandleFunc("/price-quote", quotePrice.Handle).Methods(http.MethodPost)

	// Доступность тренера на дату
	api.HandleFunc("/coaches/{coachId}/availability",
		getCoachAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	// Последние бронирования
	protected.HandleFunc("/admin/bookings/recent", getRecentBookings.Handle).Methods(http.MethodGet)

	// Обновление статуса бронирования (подтверждение/завершение)
	protected.HandleFunc("/admin/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Правила ценообразования
	protected.HandleFunc("/admin/pricing-rules", listPricingRules.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/pricing-rules", createPricingRule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/pricing-rules/{ruleId}", updatePricingRule.Handle).Methods(http.MethodPatch)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
