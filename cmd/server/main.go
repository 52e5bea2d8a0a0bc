package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ajmcleod/hangduel/internal/api"
	"github.com/ajmcleod/hangduel/internal/factory"
	"github.com/ajmcleod/hangduel/internal/services/words"
	redisstorage "github.com/ajmcleod/hangduel/internal/storage/redis"
)

func main() {
	// Load .env if present; real environment wins
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	if raw := os.Getenv("TURN_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds < 0 {
			logger.Error("invalid TURN_TIMEOUT_SECONDS", slog.String("value", raw))
			os.Exit(1)
		}
		cfg.TurnTimeout = time.Duration(seconds) * time.Second
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load the word pool: file first, then storage, then the built-in set
	loadWordPool(app, logger)

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		PlayerService:      app.PlayerService,
		EngineController:   app.EngineController,
		RegistryController: app.RegistryController,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			logger.Error("invalid PORT", slog.String("value", raw))
			os.Exit(1)
		}
		serverConfig.Port = port
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// loadWordPool fills the candidate pool from the first available source
func loadWordPool(app *factory.App, logger *slog.Logger) {
	ctx := context.Background()

	path := os.Getenv("WORDS_FILE")
	if path == "" {
		path = "data/words.txt"
	}

	if err := app.WordsService.LoadFromFile(ctx, path); err != nil {
		logger.Warn("could not load word file", slog.String("path", path), slog.String("error", err.Error()))
	} else {
		logger.Info("word pool loaded from file",
			slog.String("path", path),
			slog.Int("count", app.WordsService.WordCount()),
		)
		return
	}

	if err := app.WordsService.LoadFromStorage(ctx); err == nil {
		logger.Info("word pool loaded from storage", slog.Int("count", app.WordsService.WordCount()))
		return
	}

	if err := app.WordsService.LoadWords(words.DefaultWords); err != nil {
		logger.Error("failed to load built-in word pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("word pool loaded from built-in set", slog.Int("count", app.WordsService.WordCount()))
}
