package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/graphql-demo-go/internal/model"
	"github.com/mcoot/graphql-demo-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// The whole roster lives in one HASH keyed by player id.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// SavePlayers replaces the whole hash in one MULTI/EXEC so stale ids never survive a reseed
func (s *Storage) SavePlayers(ctx context.Context, players []*model.Player) error {
	values := make([]any, 0, 2*len(players))
	for _, p := range players {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		values = append(values, string(p.ID), data)
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, playersKey())
		if len(values) > 0 {
			pipe.HSet(ctx, playersKey(), values...)
		}
		return nil
	})
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.HGet(ctx, playersKey(), string(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return decodePlayer(string(id), data)
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	entries, err := s.client.HGetAll(ctx, playersKey()).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(entries))
	for field, data := range entries {
		player, err := decodePlayer(field, []byte(data))
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

// decodePlayer rejects records whose id differs from the hash field they sit under
func decodePlayer(field string, data []byte) (*model.Player, error) {
	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, fmt.Errorf("decode player %s: %w", field, err)
	}
	if string(player.ID) != field {
		return nil, fmt.Errorf("decode player %s: %w: record has id %q", field, model.ErrPlayerIDMismatch, player.ID)
	}
	return &player, nil
}
