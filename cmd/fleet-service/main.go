package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"fleet-service/internal/cache"
	"fleet-service/internal/config"
	"fleet-service/internal/db"
	httphandler "fleet-service/internal/http"
	"fleet-service/internal/logger"
	"fleet-service/internal/repository"
	"fleet-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment, cfg.LogLevel)
	decimal.MarshalJSONWithoutQuotes = true

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	redisCache := cache.New(cfg.Redis)
	if redisCache.Enabled() {
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			appLogger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, dashboard cache disabled")
			_ = redisCache.Close()
			redisCache = cache.New(config.RedisConfig{})
		}
		cancel()
	}
	defer redisCache.Close()

	vehicleRepo := repository.NewVehicleRepository(database)
	maintenanceRepo := repository.NewMaintenanceRepository(database)
	reviewRepo := repository.NewReviewRepository(database)
	fuelRepo := repository.NewFuelRepository(database)
	alertRepo := repository.NewAlertRepository(database)
	driverRepo := repository.NewDriverRepository(database)
	tireRepo := repository.NewTireRepository(database)
	vehicleTireRepo := repository.NewVehicleTireRepository(database)

	services := httphandler.Services{
		Vehicles:     service.NewVehicleService(vehicleRepo, appLogger),
		Maintenances: service.NewMaintenanceService(maintenanceRepo, redisCache, appLogger),
		Reviews:      service.NewReviewService(reviewRepo, maintenanceRepo),
		Fuels:        service.NewFuelService(fuelRepo, redisCache, appLogger),
		Alerts:       service.NewAlertService(alertRepo, vehicleRepo, cfg.Alert.LookaheadKm, appLogger),
		Dashboard:    service.NewDashboardService(maintenanceRepo, fuelRepo, redisCache, cfg.Dashboard.CacheTTL, appLogger),
		Drivers:      service.NewDriverService(driverRepo),
		Tires:        service.NewTireService(tireRepo),
		VehicleTires: service.NewVehicleTireService(vehicleTireRepo, vehicleRepo, tireRepo),
	}

	handler := httphandler.NewHandler(services, appLogger)
	router := httphandler.NewRouter(handler, appLogger, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info().Str("addr", addr).Msg("starting fleet service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
