package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/ajmcleod/hangduel/internal/dependencies/clock"
	"github.com/ajmcleod/hangduel/internal/dependencies/random"
	"github.com/ajmcleod/hangduel/internal/services/bot"
	"github.com/ajmcleod/hangduel/internal/services/engine"
	"github.com/ajmcleod/hangduel/internal/services/player"
	"github.com/ajmcleod/hangduel/internal/services/registry"
	"github.com/ajmcleod/hangduel/internal/services/words"
	"github.com/ajmcleod/hangduel/internal/storage"
	"github.com/ajmcleod/hangduel/internal/storage/memory"
	redisstorage "github.com/ajmcleod/hangduel/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordsService       *words.Service
	PlayerService      *player.Service
	BotPolicy          *bot.Policy
	EngineController   *engine.Controller
	RegistryController *registry.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// TurnTimeout bounds how long a versus turn may be held (optional)
	// If zero, defaults to registry.DefaultTurnTimeout
	TurnTimeout time.Duration
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	turnTimeout := cfg.TurnTimeout
	if turnTimeout == 0 {
		turnTimeout = registry.DefaultTurnTimeout
	}

	return newWithDependencies(store, clk, rnd, turnTimeout, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, turnTimeout time.Duration, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create services
	wordsService := words.New(store)
	playerService := player.New(store, clk, logger)
	botPolicy := bot.NewPolicy(rnd)
	engineController := engine.NewController(wordsService, botPolicy, clk, rnd, logger)
	registryController := registry.NewController(store, clk, rnd, turnTimeout, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		WordsService:       wordsService,
		PlayerService:      playerService,
		BotPolicy:          botPolicy,
		EngineController:   engineController,
		RegistryController: registryController,
	}
}
