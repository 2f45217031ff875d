package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/graphql-demo-go/internal/model"
	"github.com/mcoot/graphql-demo-go/internal/storage/memory"
	"github.com/mcoot/graphql-demo-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store   *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.service = New(s.store, testutil.NopLogger())
	s.ctx = context.Background()
	s.Require().NoError(s.service.Seed(s.ctx))
}

func (s *ServiceSuite) TestGetSeededPlayer() {
	player, ok, err := s.service.Get(s.ctx, "1000")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(model.PlayerID("1000"), player.ID)
	s.Equal("Steve", player.Name)
	s.Equal(model.InstrumentGuitar, player.Instrument)
}

func (s *ServiceSuite) TestGetEverySeededPlayer() {
	for _, want := range model.SeedPlayers() {
		got, ok, err := s.service.Get(s.ctx, want.ID)
		s.Require().NoError(err)
		s.Require().True(ok, "player %s should exist", want.ID)
		s.Equal(*want, *got)
	}
}

func (s *ServiceSuite) TestGetMissingPlayerIsNotAnError() {
	player, ok, err := s.service.Get(s.ctx, "9999")
	s.NoError(err)
	s.False(ok)
	s.Nil(player)
}

func (s *ServiceSuite) TestListReturnsSeedIDsInOrder() {
	players, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 11)

	var ids []model.PlayerID
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	var want []model.PlayerID
	for _, p := range model.SeedPlayers() {
		want = append(want, p.ID)
	}
	s.Equal(want, ids)
}

func (s *ServiceSuite) TestSeedIsIdempotent() {
	s.Require().NoError(s.service.Seed(s.ctx))

	count, err := s.service.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(11, count)
}

func (s *ServiceSuite) TestLoadAfterSeedIsNoop() {
	err := s.service.Load(s.ctx, []*model.Player{
		{ID: "x", Name: "Extra", Instrument: model.InstrumentPiano},
	})
	s.Require().NoError(err)

	_, ok, err := s.service.Get(s.ctx, "x")
	s.Require().NoError(err)
	s.False(ok)
}

func TestLoadRejectsInvalidRoster(t *testing.T) {
	service := New(memory.New(), testutil.NopLogger())

	err := service.Load(context.Background(), []*model.Player{
		{ID: "1", Name: "A", Instrument: model.InstrumentGuitar},
		{ID: "1", Name: "B", Instrument: model.InstrumentPiano},
	})
	if !errors.Is(err, model.ErrDuplicatePlayer) {
		t.Fatalf("Load() error = %v, want ErrDuplicatePlayer", err)
	}

	// A rejected roster leaves the service unseeded
	if err := service.Seed(context.Background()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
}

type failingStorage struct {
	*memory.Storage
}

var errBackendDown = errors.New("backend down")

func (f failingStorage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return nil, errBackendDown
}

func (f failingStorage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return nil, errBackendDown
}

func TestStorageErrorsPropagate(t *testing.T) {
	service := New(failingStorage{memory.New()}, testutil.NopLogger())
	ctx := context.Background()

	if _, _, err := service.Get(ctx, "1000"); !errors.Is(err, errBackendDown) {
		t.Errorf("Get() error = %v, want errBackendDown", err)
	}
	if _, err := service.List(ctx); !errors.Is(err, errBackendDown) {
		t.Errorf("List() error = %v, want errBackendDown", err)
	}
	if _, err := service.Count(ctx); !errors.Is(err, errBackendDown) {
		t.Errorf("Count() error = %v, want errBackendDown", err)
	}
}
