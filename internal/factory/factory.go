package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/petrichorlab/eightdays/internal/dependencies/clock"
	"github.com/petrichorlab/eightdays/internal/dependencies/random"
	"github.com/petrichorlab/eightdays/internal/notify"
	"github.com/petrichorlab/eightdays/internal/provider"
	"github.com/petrichorlab/eightdays/internal/services/day"
	"github.com/petrichorlab/eightdays/internal/services/reflection"
	"github.com/petrichorlab/eightdays/internal/services/room"
	"github.com/petrichorlab/eightdays/internal/sse"
	"github.com/petrichorlab/eightdays/internal/storage"
	"github.com/petrichorlab/eightdays/internal/storage/memory"
	redisstorage "github.com/petrichorlab/eightdays/internal/storage/redis"
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
	Clock    clock.Clock
	Random   random.Random
	Provider provider.TextProvider

	// Services
	Pipeline       *reflection.Pipeline
	RoomController *room.Controller
	DayController  *day.Controller
	HubManager     *sse.HubManager
	Broadcaster    *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// OpenAIAPIKey enables the OpenAI text provider. If empty, reflections
	// come from the deterministic fallback only.
	OpenAIAPIKey string
	// OpenAIModel overrides the default completion model (optional)
	OpenAIModel string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

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

	clk := clock.New()
	rnd := random.New()

	var textProvider provider.TextProvider
	if cfg.OpenAIAPIKey != "" {
		textProvider = provider.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, 0)
	}

	return newWithDependencies(store, clk, rnd, textProvider, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, textProvider provider.TextProvider, logger *slog.Logger) *App {
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)

	var publisher notify.Publisher = broadcaster

	pipeline := reflection.NewPipeline(textProvider, logger)
	roomController := room.NewController(store, clk, rnd, logger)
	dayController := day.NewController(store, pipeline, publisher, clk, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Provider:       textProvider,
		Pipeline:       pipeline,
		RoomController: roomController,
		DayController:  dayController,
		HubManager:     hubManager,
		Broadcaster:    broadcaster,
	}
}
