package factory

import (
	"context"
	"time"

	"github.com/mcoot/graphql-demo-go/internal/dependencies/mocks"
	"github.com/mcoot/graphql-demo-go/internal/storage"
	"github.com/mcoot/graphql-demo-go/internal/storage/memory"
	"github.com/mcoot/graphql-demo-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App on in-memory storage with mocked dependencies and
// the seed roster loaded
func NewTestApp(ctx context.Context) (*TestApp, error) {
	return NewTestAppWithStorage(ctx, memory.New())
}

// NewTestAppWithStorage is NewTestApp over a caller-provided backend
func NewTestAppWithStorage(ctx context.Context, store storage.Storage) (*TestApp, error) {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())
	if err != nil {
		return nil, err
	}
	if err := app.Roster.Seed(ctx); err != nil {
		return nil, err
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}, nil
}
