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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	exportRackKPIsHandler "github.com/m04kA/SMC-RackService/internal/api/handlers/export_rack_kpis"
	getMoveHandler "github.com/m04kA/SMC-RackService/internal/api/handlers/get_move"
	getRackHandler "github.com/m04kA/SMC-RackService/internal/api/handlers/get_rack"
	getRackKPIsHandler "github.com/m04kA/SMC-RackService/internal/api/handlers/get_rack_kpis"
	proposeMoveHandler "github.com/m04kA/SMC-RackService/internal/api/handlers/propose_move"
	resolveMoveHandler "github.com/m04kA/SMC-RackService/internal/api/handlers/resolve_move"
	"github.com/m04kA/SMC-RackService/internal/api/middleware"
	"github.com/m04kA/SMC-RackService/internal/config"
	roomsCache "github.com/m04kA/SMC-RackService/internal/infra/cache/rooms"
	reservationRepo "github.com/m04kA/SMC-RackService/internal/infra/storage/reservation"
	settingsServiceClient "github.com/m04kA/SMC-RackService/internal/integrations/settingsservice"
	"github.com/m04kA/SMC-RackService/internal/service/moves"
	snapshotService "github.com/m04kA/SMC-RackService/internal/service/snapshot"
	exportRackKPIsUC "github.com/m04kA/SMC-RackService/internal/usecase/export_rack_kpis"
	getMoveUC "github.com/m04kA/SMC-RackService/internal/usecase/get_move"
	getRackKPIsUC "github.com/m04kA/SMC-RackService/internal/usecase/get_rack_kpis"
	proposeMoveUC "github.com/m04kA/SMC-RackService/internal/usecase/propose_move"
	resolveMoveUC "github.com/m04kA/SMC-RackService/internal/usecase/resolve_move"
	"github.com/m04kA/SMC-RackService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RackService/pkg/logger"
	"github.com/m04kA/SMC-RackService/pkg/metrics"
	"github.com/m04kA/SMC-RackService/pkg/txmanager"
)

// janitorInterval период очистки просроченных переносов
const janitorInterval = 30 * time.Second

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

	log.Info("Starting SMC-RackService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

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

	// Обёртка БД: с метриками пула и запросов или без них
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Источник номеров: SettingsService, опционально через кэш Redis
	settingsClient := settingsServiceClient.NewClient(
		cfg.SettingsService.URL,
		time.Duration(cfg.SettingsService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (SettingsService=%s timeout=%ds)",
		cfg.SettingsService.URL, cfg.SettingsService.Timeout)

	var roomSource snapshotService.RoomSource = settingsClient
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кэш необязателен: при ошибках CachedSource ходит в SettingsService напрямую
			log.Warn("Redis is unavailable at %s: %v", cfg.Redis.Addr, err)
		}
		cancel()

		roomSource = roomsCache.NewCachedSource(
			settingsClient,
			roomsCache.NewRedisStore(redisClient),
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			log,
		)
		log.Info("Rooms cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Инициализируем сервисы
	snapshots := snapshotService.NewService(reservationRepository, roomSource, log)

	moveRegistry := moves.NewRegistry(
		time.Duration(cfg.Rack.SessionTTLSeconds)*time.Second,
		&moves.RealTimeProvider{},
		metricsCollector,
		log,
	)
	go moveRegistry.RunJanitor(janitorInterval, stopCh)

	// Инициализируем use cases
	proposeMoveUseCase := proposeMoveUC.NewUseCase(
		snapshots,
		reservationRepository,
		moveRegistry,
		txMgr,
		metricsCollector,
		log,
	)
	resolveMoveUseCase := resolveMoveUC.NewUseCase(
		snapshots,
		reservationRepository,
		moveRegistry,
		txMgr,
		metricsCollector,
		log,
	)
	getMoveUseCase := getMoveUC.NewUseCase(moveRegistry, log)
	getRackKPIsUseCase := getRackKPIsUC.NewUseCase(snapshots, cfg.Rack.MaxKPIDays, log)
	exportRackKPIsUseCase := exportRackKPIsUC.NewUseCase(getRackKPIsUseCase, log)

	// Инициализируем handlers
	proposeMove := proposeMoveHandler.NewHandler(proposeMoveUseCase, log)
	resolveMove := resolveMoveHandler.NewHandler(resolveMoveUseCase, log)
	getMove := getMoveHandler.NewHandler(getMoveUseCase, log)
	getRack := getRackHandler.NewHandler(snapshots, log)
	getRackKPIs := getRackKPIsHandler.NewHandler(getRackKPIsUseCase, log)
	exportRackKPIs := exportRackKPIsHandler.NewHandler(exportRackKPIsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Шахматка за период
	r.HandleFunc("/api/v1/hotels/{hotelId}/rack", getRack.Handle).Methods(http.MethodGet)

	// API prefix
	rackAPI := r.PathPrefix("/api/v1/hotels/{hotelId}/rack").Subrouter()

	// --- Переносы бронирований ---
	rackAPI.HandleFunc("/moves", proposeMove.Handle).Methods(http.MethodPost)
	rackAPI.HandleFunc("/moves/{moveId}", getMove.Handle).Methods(http.MethodGet)
	rackAPI.HandleFunc("/moves/{moveId}/resolve", resolveMove.Handle).Methods(http.MethodPost)

	// --- Показатели шахматки ---
	rackAPI.HandleFunc("/kpis", getRackKPIs.Handle).Methods(http.MethodGet)
	rackAPI.HandleFunc("/kpis/export", exportRackKPIs.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик пула и очистку переносов
	close(stopCh)

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
