package graph

import (
	"context"
	"log/slog"

	"github.com/mcoot/graphql-demo-go/internal/model"
)

// Roster is the player lookup resolvers read from
type Roster interface {
	Get(ctx context.Context, id model.PlayerID) (*model.Player, bool, error)
	List(ctx context.Context) ([]*model.Player, error)
}

// Context is the shared state handed to every resolver invocation.
// It is built once at startup and never modified.
type Context struct {
	Roster Roster
	Logger *slog.Logger
}

type contextKey struct{}

// WithContext attaches the query context to ctx
func WithContext(ctx context.Context, qc *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, qc)
}

// FromContext returns the query context attached to ctx, or nil
func FromContext(ctx context.Context) *Context {
	if ctx == nil {
		return nil
	}
	qc, _ := ctx.Value(contextKey{}).(*Context)
	return qc
}
