package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/roamly/roamly/internal/app/domain/rewards"
	"github.com/roamly/roamly/internal/app/domain/tracking"
	"github.com/roamly/roamly/internal/app/domain/trips"
	"github.com/roamly/roamly/internal/app/domain/user"
	"github.com/roamly/roamly/internal/app/observability/metrics"
	"github.com/roamly/roamly/internal/app/providers/gpsutil"
	"github.com/roamly/roamly/internal/app/providers/rewardcentral"
	"github.com/roamly/roamly/internal/app/providers/trippricer"
	"github.com/roamly/roamly/internal/app/tracker"
	"github.com/roamly/roamly/internal/pkg/config"
	pkglogger "github.com/roamly/roamly/internal/pkg/logger"
	"github.com/roamly/roamly/internal/pkg/scheduler"
	"github.com/roamly/roamly/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	// Initialize logger
	if err := pkglogger.Init(zapcore.InfoLevel, zap.String("service", "roamly")); err != nil {
		return err
	}
	logger := pkglogger.Log
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize observability
	otelShutdown, err := server.InitObservability("roamly", cfg.MetricsAddr, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	// External collaborators (simulated)
	gps := gpsutil.New(logger, cfg.Providers.SimulateLatency)
	oracle := rewardcentral.New(logger, cfg.Providers.SimulateLatency)
	pricer := trippricer.New(logger)

	// Core services
	rewardsService := rewards.NewServiceImpl(gps, oracle, rewards.Options{
		ProximityBufferMiles:     cfg.Engine.ProximityBufferMiles,
		AttractionProximityMiles: cfg.Engine.AttractionProximityMiles,
		Pool: scheduler.Config{
			Multiplier: cfg.Engine.RewardsPoolMultiplier,
			MinWorkers: cfg.Engine.RewardsPoolMinWorkers,
		},
	}, logger)

	trackingService := tracking.NewServiceImpl(gps, gps, rewardsService,
		scheduler.Config{
			Multiplier: cfg.Engine.TrackingPoolMultiplier,
			MinWorkers: cfg.Engine.TrackingPoolMinWorkers,
		},
		time.Duration(cfg.Engine.CatalogCacheTTLSeconds)*time.Second,
		logger)

	tripsService := trips.NewServiceImpl(pricer, cfg.Providers.TripPricerAPIKey, logger)

	// User registry with synthetic test users
	registry := user.NewRegistry(logger)
	registry.Seed(cfg.Tracker.InternalUserCount)
	metrics.RecordRegisteredUsers(context.Background(), registry.Count())
	logger.Info("User registry seeded", zap.Int("users", registry.Count()))

	// Background tracking sweep
	trackerCtx, stopTracker := context.WithCancel(context.Background())
	defer stopTracker()
	t := tracker.New(registry, trackingService,
		time.Duration(cfg.Tracker.IntervalMinutes)*time.Minute, logger)
	go t.Run(trackerCtx)

	// HTTP server
	srv := server.New(cfg, logger)
	router := server.SetupRouter(server.Deps{
		Registry: registry,
		Tracking: trackingService,
		Trips:    tripsService,
	}, logger)
	srv.SetRouter(router)

	server.StartPprofServer(cfg.PprofAddr)

	httpServer := srv.HTTPServer()

	done := make(chan bool, 1)
	go server.GracefulShutdown(httpServer, logger, done)

	logger.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := httpServer.ListenAndServe(); err != nil {
		logger.Error("Server error", zap.Error(err))
	}

	stopTracker()
	<-done
	logger.Info("Graceful shutdown complete")

	return nil
}
