package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/mcoot/graphql-demo-go/internal/dependencies/clock"
	"github.com/mcoot/graphql-demo-go/internal/dependencies/random"
	"github.com/mcoot/graphql-demo-go/internal/graph"
	"github.com/mcoot/graphql-demo-go/internal/metrics"
	"github.com/mcoot/graphql-demo-go/internal/services/roster"
	"github.com/mcoot/graphql-demo-go/internal/storage"
	"github.com/mcoot/graphql-demo-go/internal/storage/memory"
	redisstorage "github.com/mcoot/graphql-demo-go/internal/storage/redis"
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
	Roster   *roster.Service
	Schema   graphql.Schema
	Executor *graph.Executor
	Metrics  *metrics.Metrics

	StartedAt time.Time
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
}

// New creates a new application with all dependencies wired and the player
// roster loaded
func New(ctx context.Context, cfg Config) (*App, error) {
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
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory' or 'redis'", storageType)
	}

	app, err := newWithDependencies(store, clock.New(), random.New(), logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	if err := app.Roster.Seed(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("seed roster: %w", err)
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) (*App, error) {
	schema, err := graph.NewSchema()
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	rosterService := roster.New(store, logger)
	executor := graph.NewExecutor(schema, &graph.Context{
		Roster: rosterService,
		Logger: logger,
	})

	return &App{
		Storage:   store,
		Clock:     clk,
		Random:    rnd,
		Roster:    rosterService,
		Schema:    schema,
		Executor:  executor,
		Metrics:   metrics.New(clk),
		StartedAt: clk.Now(),
	}, nil
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
