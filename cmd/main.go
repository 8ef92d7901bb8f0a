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

	changeModeHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/change_mode"
	completeBookingHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/complete_booking"
	deleteCatalogItemHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/delete_catalog_item"
	getBookingsHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/get_bookings"
	getCatalogHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/get_catalog"
	getWizardHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/get_wizard"
	navigateWizardHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/navigate_wizard"
	reorderCatalogHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/reorder_catalog"
	saveCatalogItemHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/save_catalog_item"
	selectCanopyHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/select_canopy"
	selectColorHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/select_color"
	selectPackageHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/select_package"
	setAccessoryQuantityHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/set_accessory_quantity"
	setCanopyQuantityHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/set_canopy_quantity"
	startWizardHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/start_wizard"
	updateBookingStatusHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/update_booking_status"
	updateDetailsHandler "github.com/bmc-canopy/BMC-BookingService/internal/api/handlers/update_details"
	"github.com/bmc-canopy/BMC-BookingService/internal/api/middleware"
	"github.com/bmc-canopy/BMC-BookingService/internal/config"
	bookingRepo "github.com/bmc-canopy/BMC-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/bmc-canopy/BMC-BookingService/internal/infra/storage/catalog"
	"github.com/bmc-canopy/BMC-BookingService/internal/integrations/whatsapp"
	bookingsService "github.com/bmc-canopy/BMC-BookingService/internal/service/bookings"
	catalogService "github.com/bmc-canopy/BMC-BookingService/internal/service/catalog"
	wizardService "github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"
	completeBookingUC "github.com/bmc-canopy/BMC-BookingService/internal/usecase/complete_booking"
	"github.com/bmc-canopy/BMC-BookingService/pkg/dbmetrics"
	"github.com/bmc-canopy/BMC-BookingService/pkg/logger"
	"github.com/bmc-canopy/BMC-BookingService/pkg/metrics"
	"github.com/bmc-canopy/BMC-BookingService/pkg/simpletxmanager"
	"github.com/bmc-canopy/BMC-BookingService/pkg/txmanager"
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

	log.Info("Starting BMC-BookingService...")
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

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		catalogRepository *catalogRepo.Repository
		bookingRepository *bookingRepo.Repository
		txMgr             catalogService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		catalogRepository = catalogRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	wizardSvc := wizardService.NewService(
		catalogSvc,
		time.Duration(cfg.Wizard.SessionTTLMinutes)*time.Minute,
		log,
	)

	// Загружаем каталог: без него мастер бесполезен
	if err := catalogSvc.Load(context.Background()); err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded")

	// Инициализируем интеграцию WhatsApp
	links := whatsapp.NewLinkBuilder(cfg.WhatsApp.BaseURL, cfg.WhatsApp.Recipient)

	// Инициализируем use cases
	completeBookingUseCase := completeBookingUC.New(
		wizardSvc,
		catalogSvc,
		bookingRepository,
		links,
		log,
	)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	startWizard := startWizardHandler.NewHandler(wizardSvc, log)
	getWizard := getWizardHandler.NewHandler(wizardSvc, log)
	changeMode := changeModeHandler.NewHandler(wizardSvc, log)
	navigateWizard := navigateWizardHandler.NewHandler(wizardSvc, log)
	setCanopyQuantity := setCanopyQuantityHandler.NewHandler(wizardSvc, log)
	selectCanopy := selectCanopyHandler.NewHandler(wizardSvc, log)
	selectPackage := selectPackageHandler.NewHandler(wizardSvc, log)
	selectColor := selectColorHandler.NewHandler(wizardSvc, log)
	setAccessoryQuantity := setAccessoryQuantityHandler.NewHandler(wizardSvc, log)
	updateDetails := updateDetailsHandler.NewHandler(wizardSvc, log)
	completeBooking := completeBookingHandler.NewHandler(completeBookingUseCase, log)
	saveCatalogItem := saveCatalogItemHandler.NewHandler(catalogSvc, log)
	deleteCatalogItem := deleteCatalogItemHandler.NewHandler(catalogSvc, log)
	reorderCatalog := reorderCatalogHandler.NewHandler(catalogSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (витрина и мастер бронирования)
	// ============================================================

	// Каталог витрины
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// --- Мастер бронирования ---
	api.HandleFunc("/wizard", startWizard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}", getWizard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard/{sessionId}/mode", changeMode.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/{sessionId}/navigate", navigateWizard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/canopies", setCanopyQuantity.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/{sessionId}/canopy", selectCanopy.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/package", selectPackage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/color", selectColor.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/accessories", setAccessoryQuantity.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/{sessionId}/details", updateDetails.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/{sessionId}/complete", completeBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (basic auth)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Admin.Username, cfg.Admin.Password))

	// --- Каталог ---
	admin.HandleFunc("/catalog/{collection}/items", saveCatalogItem.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/catalog/{collection}/items/{itemId}", saveCatalogItem.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/catalog/{collection}/items/{itemId}", deleteCatalogItem.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/catalog/{collection}/order", reorderCatalog.Handle).Methods(http.MethodPut)

	// --- Брони ---
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

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
