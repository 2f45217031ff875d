// Package config holds the server's runtime settings and binds them to
// command-line flags, GQLDEMO_* environment variables and an optional
// config file through viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mcoot/graphql-demo-go/internal/api"
	"github.com/mcoot/graphql-demo-go/internal/factory"
	redisstorage "github.com/mcoot/graphql-demo-go/internal/storage/redis"
	"github.com/mcoot/graphql-demo-go/internal/web/playground"
)

// EnvPrefix is prepended to every environment variable, e.g. GQLDEMO_PORT
const EnvPrefix = "GQLDEMO"

// Flag and key names
const (
	KeyConfig          = "config"
	KeyHost            = "host"
	KeyPort            = "port"
	KeyStorage         = "storage"
	KeyRedisURL        = "redis-url"
	KeyRedisPoolSize   = "redis-pool-size"
	KeyLogLevel        = "log-level"
	KeyReadTimeout     = "read-timeout"
	KeyWriteTimeout    = "write-timeout"
	KeyShutdownTimeout = "shutdown-timeout"
	KeyPlaygroundTitle = "playground-title"
)

// Validation errors
var (
	ErrInvalidHost     = errors.New("invalid host")
	ErrInvalidPort     = errors.New("invalid port")
	ErrInvalidStorage  = errors.New("invalid storage type")
	ErrMissingRedisURL = errors.New("redis url required when storage is redis")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidTimeout  = errors.New("timeouts must be positive")
)

// Config holds every server setting
type Config struct {
	Host            string
	Port            int
	StorageType     string
	RedisURL        string
	RedisPoolSize   int
	LogLevel        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	PlaygroundTitle string
}

// DefaultConfig returns the settings used when nothing is overridden
func DefaultConfig() Config {
	server := api.DefaultServerConfig()
	redis := redisstorage.DefaultConfig()
	return Config{
		Host:            server.Host,
		Port:            server.Port,
		StorageType:     factory.StorageTypeMemory,
		RedisURL:        "",
		RedisPoolSize:   redis.PoolSize,
		LogLevel:        "info",
		ReadTimeout:     server.ReadTimeout,
		WriteTimeout:    server.WriteTimeout,
		ShutdownTimeout: server.ShutdownTimeout,
		PlaygroundTitle: playground.DefaultConfig().Title,
	}
}

// RegisterFlags adds one flag per setting to fs, defaulted from DefaultConfig
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String(KeyConfig, "", "Config file (yaml, json or toml). Flags and environment take precedence.")
	fs.String(KeyHost, d.Host, "Interface to listen on")
	fs.Int(KeyPort, d.Port, "Port to listen on")
	fs.String(KeyStorage, d.StorageType, "Player storage backend: memory or redis")
	fs.String(KeyRedisURL, d.RedisURL, "Redis URL, e.g. redis://localhost:6379/0 (storage=redis)")
	fs.Int(KeyRedisPoolSize, d.RedisPoolSize, "Redis connection pool size")
	fs.String(KeyLogLevel, d.LogLevel, "Log level: debug, info, warn, error")
	fs.Duration(KeyReadTimeout, d.ReadTimeout, "HTTP read timeout")
	fs.Duration(KeyWriteTimeout, d.WriteTimeout, "HTTP write timeout")
	fs.Duration(KeyShutdownTimeout, d.ShutdownTimeout, "Graceful shutdown timeout")
	fs.String(KeyPlaygroundTitle, d.PlaygroundTitle, "Title of the playground page")
}

// NewViper binds fs and the GQLDEMO_* environment. Dashes in keys become
// underscores in variable names (redis-url -> GQLDEMO_REDIS_URL).
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// Load reads a validated Config out of v
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		Host:            v.GetString(KeyHost),
		Port:            v.GetInt(KeyPort),
		StorageType:     strings.ToLower(v.GetString(KeyStorage)),
		RedisURL:        v.GetString(KeyRedisURL),
		RedisPoolSize:   v.GetInt(KeyRedisPoolSize),
		LogLevel:        v.GetString(KeyLogLevel),
		ReadTimeout:     v.GetDuration(KeyReadTimeout),
		WriteTimeout:    v.GetDuration(KeyWriteTimeout),
		ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
		PlaygroundTitle: v.GetString(KeyPlaygroundTitle),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the server cannot start with
func (c Config) Validate() error {
	if c.Host != "" && c.Host != "localhost" && net.ParseIP(c.Host) == nil {
		return fmt.Errorf("%w: %q", ErrInvalidHost, c.Host)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	switch c.StorageType {
	case factory.StorageTypeMemory:
	case factory.StorageTypeRedis:
		if c.RedisURL == "" {
			return ErrMissingRedisURL
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStorage, c.StorageType)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// Level parses LogLevel
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

// Server returns the HTTP server settings
func (c Config) Server() api.ServerConfig {
	return api.ServerConfig{
		Host:            c.Host,
		Port:            c.Port,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		ShutdownTimeout: c.ShutdownTimeout,
	}
}

// Factory returns the application factory settings
func (c Config) Factory(logger *slog.Logger) factory.Config {
	cfg := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		if c.RedisPoolSize > 0 {
			redisCfg.PoolSize = c.RedisPoolSize
		}
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

// Playground returns the playground page settings
func (c Config) Playground() playground.Config {
	pg := playground.DefaultConfig()
	if c.PlaygroundTitle != "" {
		pg.Title = c.PlaygroundTitle
	}
	return pg
}
