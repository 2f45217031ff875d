package random

import (
	"crypto/rand"
	"encoding/hex"
)

// Random generates identifiers that can be mocked for testing
type Random interface {
	// HexID returns a random hex string encoding n bytes
	HexID(n int) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// HexID returns 2n hex characters read from crypto/rand
func (r *CryptoRandom) HexID(n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
