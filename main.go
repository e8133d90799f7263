package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"restaurant-booking/cmd"
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/wire"
	"restaurant-booking/pkg/cache"
	"restaurant-booking/pkg/database"
	"restaurant-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("data_source", config.App.DataSource),
		zap.Duration("availability_delay", config.Availability.Delay),
	)

	// Pick the catalog backend
	var repos *repository.Repository
	switch config.App.DataSource {
	case utils.DataSourcePostgres:
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	default:
		repos = repository.NewFixtureRepository(logger)
	}

	// Optional availability cache
	var store cache.Store
	if config.Redis.Enabled() {
		rdb, err := cache.NewRedisClient(ctx, config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, availability cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			store = cache.NewRedisStore(rdb, config.App.Name)
			logger.Info("Availability cache enabled", zap.Duration("ttl", config.Redis.TTL))
		}
	}

	app := wire.Wiring(repos, store, config, logger)

	// Refuse to serve from a corrupt floor plan
	if _, err := app.Service.Catalog.Verify(ctx); err != nil {
		logger.Fatal("Floor catalog check failed", zap.Error(err))
	}

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("HTTP server stopped", zap.Error(err))
	}
}
