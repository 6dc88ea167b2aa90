package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	seedCatalogUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/seed_catalog"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	roomsPath := flag.String("rooms", "data/rooms.json", "room catalog")
	reservationsPath := flag.String("reservations", "", "initial reservations (optional)")
	timeout := flag.Duration("timeout", time.Minute, "seed timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	req := &seedCatalogUC.Request{}
	if err := readJSON(*roomsPath, &req.Rooms); err != nil {
		log.Fatal("Failed to read rooms: %v", err)
	}
	if *reservationsPath != "" {
		if err := readJSON(*reservationsPath, &req.Reservations); err != nil {
			log.Fatal("Failed to read reservations: %v", err)
		}
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	wrappedDB := dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	useCase := seedCatalogUC.NewUseCase(
		roomRepo.NewRepository(wrappedDB),
		bookingRepo.NewRepository(wrappedDB),
		txmanager.NewTransactionManager(wrappedDB),
		cfg.Booking.DefaultSource,
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := useCase.Execute(ctx, req)
	if err != nil {
		log.Fatal("Seed failed: %v", err)
	}

	log.Info("Seed complete: %d rooms, %d bookings (%d already present, %d skipped)",
		result.Rooms, result.Bookings, result.Duplicates, result.Skipped)
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
