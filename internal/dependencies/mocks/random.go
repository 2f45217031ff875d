package mocks

import (
	"sync"

	"github.com/mcoot/graphql-demo-go/internal/dependencies/random"
)

// MockRandom returns queued ids, then a fixed fallback
type MockRandom struct {
	mu       sync.Mutex
	ids      []string
	Fallback string
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{Fallback: "mock-id"}
}

// HexID returns the next queued id, or Fallback if the queue is empty
func (r *MockRandom) HexID(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ids) == 0 {
		return r.Fallback
	}
	id := r.ids[0]
	r.ids = r.ids[1:]
	return id
}

// QueueID adds values to the HexID result queue
func (r *MockRandom) QueueID(ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, ids...)
}
