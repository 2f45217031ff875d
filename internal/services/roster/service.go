package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/mcoot/graphql-demo-go/internal/model"
	"github.com/mcoot/graphql-demo-go/internal/storage"
)

// Service is the read-only player lookup shared by every request
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.Mutex
	seeded bool
}

// New creates a new roster service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Seed loads the fixed startup roster. Calls after the first success are no-ops.
func (s *Service) Seed(ctx context.Context) error {
	return s.Load(ctx, model.SeedPlayers())
}

// Load validates players and writes them to storage once per process
func (s *Service) Load(ctx context.Context, players []*model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seeded {
		return nil
	}

	if err := model.ValidatePlayers(players); err != nil {
		return fmt.Errorf("invalid roster: %w", err)
	}

	if err := s.storage.SavePlayers(ctx, players); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}

	s.seeded = true
	s.logger.Info("roster loaded", slog.Int("players", len(players)))
	return nil
}

// Get looks up a player by id. A miss is reported as ok=false with no error.
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, bool, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return player, true, nil
}

// List returns every player, ordered by id for stable output
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].ID < players[j].ID
	})
	return players, nil
}

// Count returns the number of players in the roster
func (s *Service) Count(ctx context.Context) (int, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return 0, err
	}
	return len(players), nil
}
