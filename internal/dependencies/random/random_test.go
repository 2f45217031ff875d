package random

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexID(t *testing.T) {
	r := New()

	id := r.HexID(8)
	assert.Len(t, id, 16)
	_, err := hex.DecodeString(id)
	assert.NoError(t, err)

	assert.NotEqual(t, id, r.HexID(8))
	assert.Empty(t, r.HexID(0))
}
