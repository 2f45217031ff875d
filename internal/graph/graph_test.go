package graph

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/graphql-demo-go/internal/model"
	"github.com/mcoot/graphql-demo-go/internal/services/roster"
	"github.com/mcoot/graphql-demo-go/internal/storage/memory"
	"github.com/mcoot/graphql-demo-go/internal/testutil"
)

func newTestExecutor(t *testing.T) *Executor {
	t.Helper()

	service := roster.New(memory.New(), testutil.NopLogger())
	require.NoError(t, service.Seed(context.Background()))

	schema, err := NewSchema()
	require.NoError(t, err)

	return NewExecutor(schema, &Context{Roster: service, Logger: testutil.NopLogger()})
}

// execute runs query and returns the JSON-encoded data and the result
func execute(t *testing.T, e *Executor, req Request) (string, *graphql.Result) {
	t.Helper()
	result := e.Execute(context.Background(), req)
	data, err := json.Marshal(result.Data)
	require.NoError(t, err)
	return string(data), result
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int32
		want    int32
		wantErr bool
	}{
		{"zeros", 0, 0, 0, false},
		{"positive", 2, 3, 5, false},
		{"negative", -7, -8, -15, false},
		{"mixed", -10, 4, -6, false},
		{"identity", 42, 0, 42, false},
		{"max boundary", math.MaxInt32, 0, math.MaxInt32, false},
		{"min boundary", math.MinInt32, 0, math.MinInt32, false},
		{"cancel out", math.MaxInt32, -math.MaxInt32, 0, false},
		{"overflow", math.MaxInt32, 1, 0, true},
		{"underflow", math.MinInt32, -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.a, tt.b)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHelloQuery(t *testing.T) {
	e := newTestExecutor(t)

	data, result := execute(t, e, Request{Query: `{ hello }`})
	require.False(t, result.HasErrors(), "%v", result.Errors)
	assert.JSONEq(t, `{"hello":"Hello, World!"}`, data)
}

func TestAddQuery(t *testing.T) {
	e := newTestExecutor(t)

	data, result := execute(t, e, Request{Query: `{ add(a: -3, b: 10) }`})
	require.False(t, result.HasErrors(), "%v", result.Errors)
	assert.JSONEq(t, `{"add":7}`, data)
}

func TestAddQueryWithVariables(t *testing.T) {
	e := newTestExecutor(t)

	data, result := execute(t, e, Request{
		Query:     `query Sum($a: Int!, $b: Int!) { add(a: $a, b: $b) }`,
		Variables: map[string]any{"a": float64(20), "b": float64(22)},
	})
	require.False(t, result.HasErrors(), "%v", result.Errors)
	assert.JSONEq(t, `{"add":42}`, data)
}

func TestAddQueryRejectsNonIntegerVariables(t *testing.T) {
	tests := []struct {
		name string
		a    any
	}{
		{"fraction", 1.5},
		{"numeric string", "1"},
		{"boolean", true},
		{"out of range", float64(math.MaxInt32) + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExecutor(t)

			_, result := execute(t, e, Request{
				Query:     `query Sum($a: Int!, $b: Int!) { add(a: $a, b: $b) }`,
				Variables: map[string]any{"a": tt.a, "b": float64(5)},
			})
			require.True(t, result.HasErrors())
			assert.Contains(t, result.Errors[0].Message, `Variable "$a" got invalid value`)
			assert.Nil(t, result.Data)
		})
	}
}

func TestAddQueryRejectsFloatLiteral(t *testing.T) {
	e := newTestExecutor(t)

	_, result := execute(t, e, Request{Query: `{ add(a: 1.5, b: 5) }`})
	require.True(t, result.HasErrors())
}

func TestIntScalarIsNamedInt(t *testing.T) {
	e := newTestExecutor(t)

	data, result := execute(t, e, Request{Query: `{ __type(name: "Int") { kind name } }`})
	require.False(t, result.HasErrors(), "%v", result.Errors)
	assert.JSONEq(t, `{"__type":{"kind":"SCALAR","name":"Int"}}`, data)
}

func TestAddQueryOverflow(t *testing.T) {
	e := newTestExecutor(t)

	_, result := execute(t, e, Request{Query: `{ add(a: 2147483647, b: 1) }`})
	require.True(t, result.HasErrors())
	assert.Contains(t, result.Errors[0].Message, "integer overflow")
}

func TestPlayerQuery(t *testing.T) {
	e := newTestExecutor(t)

	data, result := execute(t, e, Request{Query: `{ player(id: "1000") { id name instrument } }`})
	require.False(t, result.HasErrors(), "%v", result.Errors)
	assert.JSONEq(t, `{"player":{"id":"1000","name":"Steve","instrument":"GUITAR"}}`, data)
}

func TestPlayerQueryMissIsNull(t *testing.T) {
	e := newTestExecutor(t)

	data, result := execute(t, e, Request{Query: `{ player(id: "9999") { id name } }`})
	assert.False(t, result.HasErrors(), "a missing player is not an error")
	assert.JSONEq(t, `{"player":null}`, data)
}

func TestPlayersQuery(t *testing.T) {
	e := newTestExecutor(t)

	data, result := execute(t, e, Request{Query: `{ players { id name instrument } }`})
	require.False(t, result.HasErrors(), "%v", result.Errors)

	var decoded struct {
		Players []struct {
			ID         string `json:"id"`
			Name       string `json:"name"`
			Instrument string `json:"instrument"`
		} `json:"players"`
	}
	require.NoError(t, json.Unmarshal([]byte(data), &decoded))
	require.Len(t, decoded.Players, 11)

	var got, want []string
	for _, p := range decoded.Players {
		got = append(got, p.ID)
	}
	for _, p := range model.SeedPlayers() {
		want = append(want, string(p.ID))
	}
	sort.Strings(got)
	sort.Strings(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("player ids mismatch (-want +got):\n%s", diff)
	}
}

func TestSyntaxError(t *testing.T) {
	e := newTestExecutor(t)

	_, result := execute(t, e, Request{Query: `{ hello `})
	require.True(t, result.HasErrors())
	assert.NotEmpty(t, result.Errors[0].Message)
}

func TestUnknownField(t *testing.T) {
	e := newTestExecutor(t)

	_, result := execute(t, e, Request{Query: `{ goodbye }`})
	require.True(t, result.HasErrors())
	assert.Contains(t, result.Errors[0].Message, "goodbye")
}

func TestOperationName(t *testing.T) {
	e := newTestExecutor(t)

	data, result := execute(t, e, Request{
		Query:         `query A { hello } query B { add(a: 1, b: 1) }`,
		OperationName: "B",
	})
	require.False(t, result.HasErrors(), "%v", result.Errors)
	assert.JSONEq(t, `{"add":2}`, data)
}

func TestInstrumentEnumIntrospection(t *testing.T) {
	e := newTestExecutor(t)

	data, result := execute(t, e, Request{Query: `{ __type(name: "Instrument") { enumValues { name } } }`})
	require.False(t, result.HasErrors(), "%v", result.Errors)

	var decoded struct {
		Type struct {
			EnumValues []struct {
				Name string `json:"name"`
			} `json:"enumValues"`
		} `json:"__type"`
	}
	require.NoError(t, json.Unmarshal([]byte(data), &decoded))

	var names []string
	for _, v := range decoded.Type.EnumValues {
		names = append(names, v.Name)
	}
	assert.ElementsMatch(t, []string{"GUITAR", "PIANO"}, names)
}

func TestResolversRequireQueryContext(t *testing.T) {
	schema, err := NewSchema()
	require.NoError(t, err)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ player(id: "1000") { id } }`,
		Context:       context.Background(),
	})
	require.True(t, result.HasErrors())
	assert.Contains(t, result.Errors[0].Message, ErrNoQueryContext.Error())
}

type brokenRoster struct{}

var errRosterDown = errors.New("roster unavailable")

func (brokenRoster) Get(ctx context.Context, id model.PlayerID) (*model.Player, bool, error) {
	return nil, false, errRosterDown
}

func (brokenRoster) List(ctx context.Context) ([]*model.Player, error) {
	return nil, errRosterDown
}

func TestRosterErrorsBecomeFieldErrors(t *testing.T) {
	schema, err := NewSchema()
	require.NoError(t, err)

	logger, buf := testutil.BufferLogger()
	e := NewExecutor(schema, &Context{Roster: brokenRoster{}, Logger: logger})

	_, result := execute(t, e, Request{Query: `{ players { id } }`})
	require.True(t, result.HasErrors())
	assert.Contains(t, result.Errors[0].Message, "roster unavailable")
	assert.Contains(t, buf.String(), "list players")
}

func TestFromContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	qc := &Context{}
	assert.Same(t, qc, FromContext(WithContext(context.Background(), qc)))
}
