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

	bookTrainingHandler "github.com/gymsys/GMS-ScheduleService/internal/api/handlers/book_training"
	checkAvailabilityHandler "github.com/gymsys/GMS-ScheduleService/internal/api/handlers/check_availability"
	createTrainingHandler "github.com/gymsys/GMS-ScheduleService/internal/api/handlers/create_training"
	deleteTrainingHandler "github.com/gymsys/GMS-ScheduleService/internal/api/handlers/delete_training"
	getActiveClientsHandler "github.com/gymsys/GMS-ScheduleService/internal/api/handlers/get_active_clients"
	getActiveTrainersHandler "github.com/gymsys/GMS-ScheduleService/internal/api/handlers/get_active_trainers"
	getClientSlotsHandler "github.com/gymsys/GMS-ScheduleService/internal/api/handlers/get_client_slots"
	getScheduleViewHandler "github.com/gymsys/GMS-ScheduleService/internal/api/handlers/get_schedule_view"
	getTrainingHandler "github.com/gymsys/GMS-ScheduleService/internal/api/handlers/get_training"
	listTrainingsHandler "github.com/gymsys/GMS-ScheduleService/internal/api/handlers/list_trainings"
	updateStatusHandler "github.com/gymsys/GMS-ScheduleService/internal/api/handlers/update_status"
	updateTrainingHandler "github.com/gymsys/GMS-ScheduleService/internal/api/handlers/update_training"
	"github.com/gymsys/GMS-ScheduleService/internal/api/middleware"
	"github.com/gymsys/GMS-ScheduleService/internal/config"
	clientRepo "github.com/gymsys/GMS-ScheduleService/internal/infra/storage/client"
	contractRepo "github.com/gymsys/GMS-ScheduleService/internal/infra/storage/contract"
	trainingRepo "github.com/gymsys/GMS-ScheduleService/internal/infra/storage/training"
	staffServiceClient "github.com/gymsys/GMS-ScheduleService/internal/integrations/staffservice"
	directoryService "github.com/gymsys/GMS-ScheduleService/internal/service/directory"
	trainingsService "github.com/gymsys/GMS-ScheduleService/internal/service/trainings"
	bookTrainingUC "github.com/gymsys/GMS-ScheduleService/internal/usecase/book_training"
	checkAvailabilityUC "github.com/gymsys/GMS-ScheduleService/internal/usecase/check_availability"
	createTrainingUC "github.com/gymsys/GMS-ScheduleService/internal/usecase/create_training"
	getClientSlotsUC "github.com/gymsys/GMS-ScheduleService/internal/usecase/get_client_slots"
	getScheduleViewUC "github.com/gymsys/GMS-ScheduleService/internal/usecase/get_schedule_view"
	"github.com/gymsys/GMS-ScheduleService/pkg/dbmetrics"
	"github.com/gymsys/GMS-ScheduleService/pkg/logger"
	"github.com/gymsys/GMS-ScheduleService/pkg/metrics"
	"github.com/gymsys/GMS-ScheduleService/pkg/simpletxmanager"
	"github.com/gymsys/GMS-ScheduleService/pkg/txmanager"
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

	log.Info("Starting GMS-ScheduleService...")
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

	// Инициализируем клиента справочника персонала
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (StaffService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		trainingRepository *trainingRepo.Repository
		contractRepository *contractRepo.Repository
		clientRepository   *clientRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		trainingRepository = trainingRepo.NewRepository(wrappedDB)
		contractRepository = contractRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		trainingRepository = trainingRepo.NewRepository(db)
		contractRepository = contractRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	trainingsSvc := trainingsService.NewService(trainingRepository, log)
	directorySvc := directoryService.NewService(staffClient, clientRepository, log)

	// Инициализируем use cases
	getScheduleViewUseCase := getScheduleViewUC.NewUseCase(trainingRepository, log)

	bookTrainingUseCase := bookTrainingUC.NewUseCase(
		trainingRepository,
		contractRepository,
		clientRepository,
		staffClient,
		txMgr,
		bookTrainingUC.GymSettings{
			OpenTime:                cfg.Gym.OpenTime,
			CloseTime:               cfg.Gym.CloseTime,
			MinBookingNoticeMinutes: cfg.Gym.MinBookingNoticeMinutes,
			MaxConcurrentPerTrainer: cfg.Gym.MaxConcurrentPerTrainer,
		},
		log,
	)

	createTrainingUseCase := createTrainingUC.NewUseCase(
		trainingRepository,
		contractRepository,
		clientRepository,
		staffClient,
		txMgr,
		createTrainingUC.GymSettings{
			OpenTime:                cfg.Gym.OpenTime,
			CloseTime:               cfg.Gym.CloseTime,
			MaxConcurrentPerTrainer: cfg.Gym.MaxConcurrentPerTrainer,
		},
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		trainingRepository,
		checkAvailabilityUC.GymSettings{
			OpenTime:                cfg.Gym.OpenTime,
			CloseTime:               cfg.Gym.CloseTime,
			MinBookingNoticeMinutes: cfg.Gym.MinBookingNoticeMinutes,
			MaxConcurrentPerTrainer: cfg.Gym.MaxConcurrentPerTrainer,
		},
		log,
	)

	getClientSlotsUseCase := getClientSlotsUC.NewUseCase(
		trainingRepository,
		contractRepository,
		staffClient,
		getClientSlotsUC.GymSettings{
			OpenTime:                cfg.Gym.OpenTime,
			CloseTime:               cfg.Gym.CloseTime,
			SlotDurationMinutes:     cfg.Gym.SlotDurationMinutes,
			MinBookingNoticeMinutes: cfg.Gym.MinBookingNoticeMinutes,
			MaxConcurrentPerTrainer: cfg.Gym.MaxConcurrentPerTrainer,
		},
		log,
	)

	// Инициализируем handlers
	listTrainings := listTrainingsHandler.NewHandler(trainingsSvc, log)
	getTraining := getTrainingHandler.NewHandler(trainingsSvc, log)
	createTraining := createTrainingHandler.NewHandler(createTrainingUseCase, log)
	updateTraining := updateTrainingHandler.NewHandler(trainingsSvc, log)
	deleteTraining := deleteTrainingHandler.NewHandler(trainingsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(trainingsSvc, log)
	getScheduleView := getScheduleViewHandler.NewHandler(getScheduleViewUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getClientSlots := getClientSlotsHandler.NewHandler(getClientSlotsUseCase, log)
	bookTraining := bookTrainingHandler.NewHandler(bookTrainingUseCase, log)
	getActiveTrainers := getActiveTrainersHandler.NewHandler(directorySvc, log)
	getActiveClients := getActiveClientsHandler.NewHandler(directorySvc, log)

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

	// Все маршруты расписания требуют заголовки пользователя от шлюза
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Представления и справочники ---
	// Статические пути регистрируются раньше /schedules/{id}
	protected.HandleFunc("/schedules/views", getScheduleView.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/disponibilidad", checkAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/horarios", getClientSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/entrenadores", getActiveTrainers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/clientes", getActiveClients.Handle).Methods(http.MethodGet)

	// --- Запись клиента ---
	protected.HandleFunc("/schedules/reservas", bookTraining.Handle).Methods(http.MethodPost)

	// --- CRUD тренировок ---
	protected.HandleFunc("/schedules", listTrainings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules", createTraining.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedules/{id}", getTraining.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/{id}", updateTraining.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedules/{id}", deleteTraining.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/schedules/{id}/estado", updateStatus.Handle).Methods(http.MethodPatch)

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
