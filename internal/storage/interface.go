package storage

import (
	"context"

	"github.com/mcoot/graphql-demo-go/internal/model"
)

// Storage holds the player roster.
// Players are written once during startup and only read afterwards.
type Storage interface {
	// SavePlayers replaces the stored roster with players, keyed by id
	SavePlayers(ctx context.Context, players []*model.Player) error
	// GetPlayer returns model.ErrPlayerNotFound when id is unknown
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	// ListPlayers returns every stored player in no particular order
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	Close() error
}
