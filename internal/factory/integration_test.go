package factory

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/graphql-demo-go/internal/graph"
	"github.com/mcoot/graphql-demo-go/internal/model"
	redisstorage "github.com/mcoot/graphql-demo-go/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.ctx = context.Background()
	app, err := NewTestApp(s.ctx)
	s.Require().NoError(err)
	s.app = app
}

func (s *IntegrationSuite) TearDownTest() {
	s.NoError(s.app.Close())
}

func (s *IntegrationSuite) execute(query string) map[string]any {
	result := s.app.Executor.Execute(s.ctx, graph.Request{Query: query})
	s.Require().False(result.HasErrors(), "unexpected errors: %v", result.Errors)
	data, ok := result.Data.(map[string]any)
	s.Require().True(ok)
	return data
}

// Test: the seeded roster is visible through every query field
func (s *IntegrationSuite) TestSeededRosterQueries() {
	data := s.execute(`{ players { id name instrument } }`)
	players, ok := data["players"].([]any)
	s.Require().True(ok)
	s.Len(players, len(model.SeedPlayers()))

	data = s.execute(`{ player(id: "1000") { name instrument } }`)
	s.Equal(map[string]any{"name": "Steve", "instrument": "GUITAR"}, data["player"])

	data = s.execute(`{ player(id: "missing") { name } }`)
	s.Nil(data["player"])
}

func (s *IntegrationSuite) TestScalarQueries() {
	data := s.execute(`{ hello add(a: 2, b: 3) }`)
	s.Equal("Hello, World!", data["hello"])
	s.EqualValues(5, data["add"])
}

func (s *IntegrationSuite) TestRosterLoadsOnce() {
	s.Require().NoError(s.app.Roster.Seed(s.ctx))

	count, err := s.app.Roster.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(len(model.SeedPlayers()), count)
}

func (s *IntegrationSuite) TestStartedAtUsesClock() {
	s.Equal(s.app.MockClock.Now(), s.app.StartedAt)

	s.app.MockClock.Advance(time.Minute)
	s.Equal(time.Minute, s.app.Clock.Since(s.app.StartedAt))
}

func TestNewMemory(t *testing.T) {
	app, err := New(context.Background(), Config{})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	count, err := app.Roster.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(model.SeedPlayers()), count)
	assert.NotNil(t, app.Metrics)
}

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mr.Addr()

	app, err := New(context.Background(), Config{
		StorageType: StorageTypeRedis,
		RedisConfig: &cfg,
	})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	player, ok, err := app.Roster.Get(context.Background(), "1001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Alice", player.Name)
	assert.True(t, mr.Exists("gqldemo:players"))
}

func TestNewRedisReplacesStaleRoster(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.HSet("gqldemo:players", "5555", `{"id":"5555","name":"Ghost","instrument":"PIANO"}`)
	mr.HSet("gqldemo:players", "7777", `{"id":"1000","name":"Impostor","instrument":"GUITAR"}`)

	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mr.Addr()

	app, err := New(context.Background(), Config{
		StorageType: StorageTypeRedis,
		RedisConfig: &cfg,
	})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	count, err := app.Roster.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(model.SeedPlayers()), count)

	for _, id := range []model.PlayerID{"5555", "7777"} {
		_, ok, err := app.Roster.Get(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, ok, "player %s should be gone after seeding", id)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown storage", Config{StorageType: "postgres"}},
		{"redis without config", Config{StorageType: StorageTypeRedis}},
		{"unreachable redis", Config{StorageType: StorageTypeRedis, RedisConfig: &redisstorage.Config{
			URL:            "redis://127.0.0.1:1",
			ConnectTimeout: 100 * time.Millisecond,
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(context.Background(), tt.cfg)
			assert.Error(t, err)
		})
	}
}
