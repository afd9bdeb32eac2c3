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

	cancelReservationHandler "github.com/m04kA/SMC-PrepRoomService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/SMC-PrepRoomService/internal/api/handlers/check_availability"
	checkInHandler "github.com/m04kA/SMC-PrepRoomService/internal/api/handlers/check_in"
	checkOutHandler "github.com/m04kA/SMC-PrepRoomService/internal/api/handlers/check_out"
	getCaseReservationsHandler "github.com/m04kA/SMC-PrepRoomService/internal/api/handlers/get_case_reservations"
	getReservationHandler "github.com/m04kA/SMC-PrepRoomService/internal/api/handlers/get_reservation"
	listScheduleHandler "github.com/m04kA/SMC-PrepRoomService/internal/api/handlers/list_schedule"
	overrideConflictHandler "github.com/m04kA/SMC-PrepRoomService/internal/api/handlers/override_conflict"
	reserveRoomHandler "github.com/m04kA/SMC-PrepRoomService/internal/api/handlers/reserve_room"
	runAutoReleaseHandler "github.com/m04kA/SMC-PrepRoomService/internal/api/handlers/run_auto_release"
	"github.com/m04kA/SMC-PrepRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-PrepRoomService/internal/config"
	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-PrepRoomService/internal/infra/storage/preproom"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/conflicts"
	reservationsService "github.com/m04kA/SMC-PrepRoomService/internal/service/reservations"
	autoReleaseUC "github.com/m04kA/SMC-PrepRoomService/internal/usecase/auto_release"
	cancelReservationUC "github.com/m04kA/SMC-PrepRoomService/internal/usecase/cancel_reservation"
	checkAvailabilityUC "github.com/m04kA/SMC-PrepRoomService/internal/usecase/check_availability"
	checkInUC "github.com/m04kA/SMC-PrepRoomService/internal/usecase/check_in"
	checkOutUC "github.com/m04kA/SMC-PrepRoomService/internal/usecase/check_out"
	listScheduleUC "github.com/m04kA/SMC-PrepRoomService/internal/usecase/list_schedule"
	overrideConflictUC "github.com/m04kA/SMC-PrepRoomService/internal/usecase/override_conflict"
	reserveRoomUC "github.com/m04kA/SMC-PrepRoomService/internal/usecase/reserve_room"
	"github.com/m04kA/SMC-PrepRoomService/internal/worker/autorelease"
	"github.com/m04kA/SMC-PrepRoomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PrepRoomService/pkg/logger"
	"github.com/m04kA/SMC-PrepRoomService/pkg/metrics"
	"github.com/m04kA/SMC-PrepRoomService/pkg/txmanager"
)

// TxManager общий интерфейс менеджеров транзакций PostgreSQL и in-memory хранилища
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// DomainRecorder бизнес-метрики, которые пишут use cases
type DomainRecorder interface {
	RecordReservationCreated(priority string, override bool)
	RecordConflict(conflictType string)
	RecordTransition(status string)
	RecordAutoReleased(count int)
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

	log.Info("Starting SMC-PrepRoomService...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		recorder         DomainRecorder = metrics.NewNoop()
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	policy := cfg.Scheduling.Policy()

	// Инициализируем хранилище
	var (
		repo  domain.PrepRoomRepository
		txMgr TxManager
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		memoryRepo := memory.NewRepository(policy)
		now := time.Now().UTC()
		for _, seed := range cfg.Seed.Rooms {
			memoryRepo.AddRoom(seed.ToDomain(now))
		}
		repo = memoryRepo
		txMgr = memory.NewTxManager(memoryRepo)
		log.Info("Using in-memory storage with %d seeded rooms", len(cfg.Seed.Rooms))

	default:
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

		// Без метрик обёртка работает как обычный *sql.DB
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		pgRepo := preproom.NewRepository(wrappedDB, policy)

		// Комнаты из конфигурации
		now := time.Now().UTC()
		for _, seed := range cfg.Seed.Rooms {
			if err := pgRepo.UpsertRoom(context.Background(), seed.ToDomain(now)); err != nil {
				log.Fatal("Failed to seed room %s:%s: %v", seed.FuneralHomeID, seed.RoomNumber, err)
			}
		}

		repo = pgRepo
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	}

	// Движок конфликтов
	engine := conflicts.NewEngine(repo, policy, log)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(repo, log)

	// Инициализируем use cases
	reserveRoomUseCase := reserveRoomUC.NewUseCase(repo, engine, txMgr, recorder, nil, log)
	overrideConflictUseCase := overrideConflictUC.NewUseCase(repo, engine, txMgr, recorder, nil, log)
	checkInUseCase := checkInUC.NewUseCase(repo, txMgr, recorder, nil, log)
	checkOutUseCase := checkOutUC.NewUseCase(repo, txMgr, recorder, nil, log)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(repo, txMgr, recorder, nil, log)
	autoReleaseUseCase := autoReleaseUC.NewUseCase(repo, txMgr, recorder, policy, nil, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(repo, policy, nil, log)
	listScheduleUseCase := listScheduleUC.NewUseCase(repo, log)

	// Инициализируем handlers
	reserveRoom := reserveRoomHandler.NewHandler(reserveRoomUseCase, log)
	overrideConflict := overrideConflictHandler.NewHandler(overrideConflictUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	checkOut := checkOutHandler.NewHandler(checkOutUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getCaseReservations := getCaseReservationsHandler.NewHandler(reservationSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	listSchedule := listScheduleHandler.NewHandler(listScheduleUseCase, log)
	runAutoRelease := runAutoReleaseHandler.NewHandler(autoReleaseUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// READ ROUTES (без X-Staff-ID)
	// ============================================================

	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cases/{caseId}/reservations", getCaseReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/funeral-homes/{funeralHomeId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/funeral-homes/{funeralHomeId}/schedule", listSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (требуют X-Staff-ID header)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffID)

	// --- Бронирования ---
	// override регистрируется раньше /reservations/{reservationId}/...
	staff.HandleFunc("/reservations/override", overrideConflict.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/reservations", reserveRoom.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/reservations/{reservationId}/check-in", checkIn.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/reservations/{reservationId}/check-out", checkOut.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Администрирование ---
	staff.HandleFunc("/admin/auto-release", runAutoRelease.Handle).Methods(http.MethodPost)

	// Фоновое авто-освобождение
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.AutoRelease.Enabled {
		worker := autorelease.NewWorker(
			autoReleaseUseCase,
			time.Duration(cfg.AutoRelease.IntervalSeconds)*time.Second,
			log,
		)
		go worker.Run(workerCtx)
	}

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

	stopWorker()

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
