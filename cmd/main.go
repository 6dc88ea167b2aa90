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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	createBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_booking"
	detectConflictsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/detect_conflicts"
	getBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_booking"
	getRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_room"
	getScheduleHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_schedule"
	listBookingsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/list_bookings"
	listRoomsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/list_rooms"
	searchRoomsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/search_rooms"
	syncLibCalHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/sync_libcal"
	upsertRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/upsert_room"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/lock"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	libCalClient "github.com/m04kA/SMC-RoomBookingService/internal/integrations/libcal"
	"github.com/m04kA/SMC-RoomBookingService/internal/scheduler"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	roomsService "github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
	createBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	detectConflictsUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/detect_conflicts"
	getScheduleUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_schedule"
	searchRoomsUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/search_rooms"
	syncAvailabilityUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/sync_availability"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
)

const syncJobName = "libcal-sync"

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

	log.Info("Starting SMC-RoomBookingService...")
	log.Info("Configuration loaded from config.toml")

	semesterStart, semesterEnd, _ := cfg.Booking.SemesterWindow()
	location, _ := cfg.Booking.Location()

	// Инициализируем метрики (если включены)
	// nil-коллектор безопасен: все методы metrics.Metrics его проверяют
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Блокировки бронирования (Redis необязателен)
	var locker createBookingUC.Locker = lock.NoopLocker{}
	var redisCloser func() error
	if cfg.Redis.Enabled {
		redisClient, err := lock.NewClient(
			context.Background(),
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.DialTimeout)*time.Second,
		)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		redisCloser = redisClient.Close
		locker = lock.NewRedisLocker(redisClient, log)
		log.Info("Booking locks enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Booking.LockTTL)
	} else {
		log.Warn("Redis disabled, booking locks rely on database only")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	roomSvc := roomsService.NewService(roomRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		locker,
		txMgr,
		metricsCollector,
		createBookingUC.Policy{
			SemesterStart: semesterStart,
			SemesterEnd:   semesterEnd,
			DefaultSource: cfg.Booking.DefaultSource,
			LockTTL:       time.Duration(cfg.Booking.LockTTL) * time.Second,
			Location:      location,
		},
		log,
	)
	searchRoomsUseCase := searchRoomsUC.NewUseCase(bookingRepository, roomRepository, log)
	detectConflictsUseCase := detectConflictsUC.NewUseCase(bookingRepository, roomRepository, metricsCollector, log)
	getScheduleUseCase := getScheduleUC.NewUseCase(bookingRepository, roomRepository, log)

	// Интеграция с LibCal
	libcal := libCalClient.NewClient(
		cfg.LibCal.URL,
		libCalClient.Options{
			LocationID: cfg.LibCal.LocationID,
			GroupID:    cfg.LibCal.GroupID,
			PageSize:   cfg.LibCal.PageSize,
		},
		time.Duration(cfg.LibCal.Timeout)*time.Second,
		rate.NewLimiter(rate.Limit(cfg.LibCal.RequestsPerSecond), cfg.LibCal.Burst),
		log,
	)
	syncUseCase := syncAvailabilityUC.NewUseCase(
		libcal,
		bookingRepository,
		roomRepository,
		txMgr,
		metricsCollector,
		syncAvailabilityUC.Config{
			WindowDays: cfg.LibCal.WindowDays,
			Items:      cfg.LibCal.Items,
			Location:   location,
		},
		log,
	)

	// Периодическая синхронизация
	sched := scheduler.New(time.Duration(cfg.LibCal.Timeout*cfg.LibCal.WindowDays)*time.Second, location, log)
	if cfg.LibCal.Enabled {
		if err := sched.Add(syncJobName, cfg.LibCal.Schedule, syncUseCase.Run); err != nil {
			log.Fatal("Failed to schedule LibCal sync: %v", err)
		}
		sched.Start()
		log.Info("LibCal sync scheduled (%s, %d items mapped, window=%d days)",
			cfg.LibCal.Schedule, len(cfg.LibCal.Items), cfg.LibCal.WindowDays)
	}

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	upsertRoom := upsertRoomHandler.NewHandler(roomSvc, log)
	searchRooms := searchRoomsHandler.NewHandler(searchRoomsUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	detectConflicts := detectConflictsHandler.NewHandler(detectConflictsUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	syncLibCal := syncLibCalHandler.NewHandler(syncUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Комнаты ---
	// /rooms/search регистрируется раньше /rooms/{roomId}
	api.HandleFunc("/rooms/search", searchRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", upsertRoom.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// --- Аналитика ---
	api.HandleFunc("/conflicts", detectConflicts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	// TODO: закрыть /admin и PUT /rooms аутентификацией, когда появится SSO кампуса
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/sync/libcal", syncLibCal.Handle).Methods(http.MethodPost)

	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)
	handler = gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(log),
		gorillaHandlers.PrintRecoveryStack(true),
	)(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if cfg.LibCal.Enabled {
		if err := sched.Stop(shutdownCtx); err != nil {
			log.Error("Scheduler did not stop in time: %v", err)
		}
	}

	if redisCloser != nil {
		if err := redisCloser(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
