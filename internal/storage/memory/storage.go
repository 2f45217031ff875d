package memory

import (
	"context"
	"sync"

	"github.com/mcoot/graphql-demo-go/internal/model"
	"github.com/mcoot/graphql-demo-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu      sync.RWMutex
	players map[model.PlayerID]model.Player
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SavePlayers(ctx context.Context, players []*model.Player) error {
	roster := make(map[model.PlayerID]model.Player, len(players))
	for _, p := range players {
		roster[p.ID] = *p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = roster
	return nil
}

// GetPlayer returns a copy so callers cannot modify the stored record
func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, &p)
	}
	return players, nil
}

func (s *Storage) Close() error {
	return nil
}
