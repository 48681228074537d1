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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	getAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_availability"
	getServiceScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_service_schedule"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/cache"
	reservationRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/reservation"
	serviceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	staffServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	schedulesService "github.com/m04kA/SMC-AvailabilityService/internal/service/schedules"
	getAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := defaultConfigPath
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}
	serviceRepository := serviceRepo.NewRepository(executor)
	reservationRepository := reservationRepo.NewRepository(executor)

	// Кэш окон доступности
	availabilityCache, closeCache := newCache(cfg, log)
	defer closeCache()

	// Справочник специалистов (опционально)
	var staffClient getAvailabilityUC.StaffServiceClient
	if cfg.StaffService.URL != "" {
		staffClient = staffServiceClient.NewClient(
			cfg.StaffService.URL,
			time.Duration(cfg.StaffService.Timeout)*time.Second,
			log,
		)
		log.Info("StaffService client initialized (url=%s, timeout=%ds)", cfg.StaffService.URL, cfg.StaffService.Timeout)
	} else {
		log.Warn("StaffService url is empty, specialist lookup disabled")
	}

	// Сервисы и use cases
	schedulesSvc := schedulesService.NewService(serviceRepository, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		serviceRepository,
		reservationRepository,
		staffClient,
		availabilityCache,
		metricsCollector,
		log,
		cfg.Availability.WindowDays,
	)

	// Handlers
	location, _ := cfg.Availability.Location() // проверено в Validate
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log, location)
	getServiceSchedule := getServiceScheduleHandler.NewHandler(schedulesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Окно доступности специалиста
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Расписание услуги
	api.HandleFunc("/services/{serviceId}/schedule", getServiceSchedule.Handle).Methods(http.MethodGet)

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

// newCache создает кэш по cache.backend. Второе значение освобождает ресурсы кэша.
func newCache(cfg *config.Config, log *logger.Logger) (getAvailabilityUC.Cache, func()) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			// кэш не обязателен, запросы будут считаться без него
			log.Warn("Redis ping failed (addr=%s): %v", cfg.Redis.Addr, err)
		}

		log.Info("Using redis availability cache (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Cache.TTL)
		return cache.NewRedis(client, cfg.Cache.TTLDuration()), func() {
			if err := client.Close(); err != nil {
				log.Error("Failed to close redis client: %v", err)
			}
		}

	case config.CacheBackendNone:
		log.Info("Availability cache disabled")
		return cache.Noop{}, func() {}

	default:
		log.Info("Using in-memory availability cache (max_entries=%d, ttl=%ds)", cfg.Cache.MaxEntries, cfg.Cache.TTL)
		return cache.NewMemory(cfg.Cache.MaxEntries, cfg.Cache.TTLDuration()), func() {}
	}
}
