package graph

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/graphql-go/graphql"

	"github.com/mcoot/graphql-demo-go/internal/model"
)

// HelloMessage is the value of the hello field
const HelloMessage = "Hello, World!"

var (
	// ErrOverflow is returned when add's result does not fit in a GraphQL Int
	ErrOverflow = errors.New("integer overflow")
	// ErrNoQueryContext means the executor was bypassed
	ErrNoQueryContext = errors.New("query context missing")
	// errUnexpectedSource means a Player field resolved against something else
	errUnexpectedSource = errors.New("unexpected player source")
)

// Add returns a+b, or ErrOverflow when the sum leaves the int32 range
func Add(a, b int32) (int32, error) {
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return 0, fmt.Errorf("%w: %d + %d does not fit in Int", ErrOverflow, a, b)
	}
	return int32(sum), nil
}

func resolveAdd(p graphql.ResolveParams) (any, error) {
	a, err := int32Arg(p.Args, "a")
	if err != nil {
		return nil, err
	}
	b, err := int32Arg(p.Args, "b")
	if err != nil {
		return nil, err
	}
	sum, err := Add(a, b)
	if err != nil {
		return nil, err
	}
	return sum, nil
}

// int32Arg reads an Int argument, rejecting literals outside the int32 range
func int32Arg(args map[string]any, name string) (int32, error) {
	v, ok := args[name].(int)
	if !ok {
		return 0, fmt.Errorf("argument %q: expected Int, got %T", name, args[name])
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: argument %q = %d", ErrOverflow, name, v)
	}
	return int32(v), nil
}

func resolveHello(p graphql.ResolveParams) (any, error) {
	return HelloMessage, nil
}

func resolvePlayers(p graphql.ResolveParams) (any, error) {
	qc := FromContext(p.Context)
	if qc == nil {
		return nil, ErrNoQueryContext
	}
	players, err := qc.Roster.List(p.Context)
	if err != nil {
		qc.logError("list players", err)
		return nil, err
	}
	return players, nil
}

func resolvePlayer(p graphql.ResolveParams) (any, error) {
	qc := FromContext(p.Context)
	if qc == nil {
		return nil, ErrNoQueryContext
	}
	id, _ := p.Args["id"].(string)
	player, ok, err := qc.Roster.Get(p.Context, model.PlayerID(id))
	if err != nil {
		qc.logError("get player", err, slog.String("id", id))
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return player, nil
}

func playerSource(p graphql.ResolveParams) (*model.Player, error) {
	switch src := p.Source.(type) {
	case *model.Player:
		return src, nil
	case model.Player:
		return &src, nil
	}
	return nil, fmt.Errorf("%w: %T", errUnexpectedSource, p.Source)
}

func resolvePlayerID(p graphql.ResolveParams) (any, error) {
	player, err := playerSource(p)
	if err != nil {
		return nil, err
	}
	return string(player.ID), nil
}

func resolvePlayerName(p graphql.ResolveParams) (any, error) {
	player, err := playerSource(p)
	if err != nil {
		return nil, err
	}
	return player.Name, nil
}

func resolvePlayerInstrument(p graphql.ResolveParams) (any, error) {
	player, err := playerSource(p)
	if err != nil {
		return nil, err
	}
	return player.Instrument, nil
}

func (qc *Context) logError(msg string, err error, attrs ...any) {
	if qc.Logger == nil {
		return
	}
	qc.Logger.Error(msg, append([]any{slog.String("error", err.Error())}, attrs...)...)
}
