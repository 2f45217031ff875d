package graph

import (
	"math"

	"github.com/graphql-go/graphql"

	"github.com/mcoot/graphql-demo-go/internal/model"
)

// intScalar replaces the built-in Int so variables carrying fractions,
// strings or booleans are rejected instead of truncated
var intScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:         "Int",
	Description:  graphql.Int.Description(),
	Serialize:    graphql.Int.Serialize,
	ParseValue:   parseIntValue,
	ParseLiteral: graphql.Int.ParseLiteral,
})

// parseIntValue returns nil for anything that is not a whole number in
// the int32 range, which graphql-go reports as an invalid variable
func parseIntValue(value any) any {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return nil
		}
	case float32:
		if float64(v) != math.Trunc(float64(v)) {
			return nil
		}
	case string, *string, bool, *bool:
		return nil
	}
	return graphql.Int.ParseValue(value)
}

var instrumentEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Instrument",
	Values: graphql.EnumValueConfigMap{
		string(model.InstrumentGuitar): &graphql.EnumValueConfig{Value: model.InstrumentGuitar},
		string(model.InstrumentPiano):  &graphql.EnumValueConfig{Value: model.InstrumentPiano},
	},
})

var playerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Player",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.String),
			Resolve: resolvePlayerID,
		},
		"name": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.String),
			Resolve: resolvePlayerName,
		},
		"instrument": &graphql.Field{
			Type:    graphql.NewNonNull(instrumentEnum),
			Resolve: resolvePlayerInstrument,
		},
	},
})

var queryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Query",
	Fields: graphql.Fields{
		"add": &graphql.Field{
			Type:        graphql.NewNonNull(intScalar),
			Description: "Add two numbers a and b",
			Args: graphql.FieldConfigArgument{
				"a": &graphql.ArgumentConfig{Type: graphql.NewNonNull(intScalar)},
				"b": &graphql.ArgumentConfig{Type: graphql.NewNonNull(intScalar)},
			},
			Resolve: resolveAdd,
		},
		"hello": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "Get the hello message",
			Resolve:     resolveHello,
		},
		"players": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(playerType))),
			Description: "Every player in the roster",
			Resolve:     resolvePlayers,
		},
		"player": &graphql.Field{
			Type:        playerType,
			Description: "Look up a player by id; null when unknown",
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: resolvePlayer,
		},
	},
})

// NewSchema builds the query-only schema
func NewSchema() (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}
