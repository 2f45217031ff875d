package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstrument(t *testing.T) {
	tests := []struct {
		input   string
		want    Instrument
		wantErr bool
	}{
		{"GUITAR", InstrumentGuitar, false},
		{"PIANO", InstrumentPiano, false},
		{"guitar", "", true},
		{"", "", true},
		{"DRUMS", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInstrument(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInstrument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlayerJSONRejectsUnknownInstrument(t *testing.T) {
	var p Player
	err := json.Unmarshal([]byte(`{"id":"1","name":"X","instrument":"BANJO"}`), &p)
	assert.ErrorIs(t, err, ErrInvalidInstrument)

	err = json.Unmarshal([]byte(`{"id":"1","name":"X","instrument":"PIANO"}`), &p)
	require.NoError(t, err)
	assert.Equal(t, InstrumentPiano, p.Instrument)
}

func TestValidatePlayers(t *testing.T) {
	t.Run("seed roster is valid", func(t *testing.T) {
		assert.NoError(t, ValidatePlayers(SeedPlayers()))
	})

	t.Run("duplicate id", func(t *testing.T) {
		players := []*Player{
			{ID: "1", Name: "A", Instrument: InstrumentGuitar},
			{ID: "1", Name: "B", Instrument: InstrumentPiano},
		}
		assert.ErrorIs(t, ValidatePlayers(players), ErrDuplicatePlayer)
	})

	t.Run("empty id", func(t *testing.T) {
		players := []*Player{{Name: "A", Instrument: InstrumentGuitar}}
		assert.ErrorIs(t, ValidatePlayers(players), ErrEmptyPlayerID)
	})

	t.Run("empty name", func(t *testing.T) {
		players := []*Player{{ID: "1", Instrument: InstrumentGuitar}}
		assert.ErrorIs(t, ValidatePlayers(players), ErrEmptyPlayerName)
	})

	t.Run("bad instrument", func(t *testing.T) {
		players := []*Player{{ID: "1", Name: "A", Instrument: "OBOE"}}
		assert.ErrorIs(t, ValidatePlayers(players), ErrInvalidInstrument)
	})

	t.Run("nil entry", func(t *testing.T) {
		assert.ErrorIs(t, ValidatePlayers([]*Player{nil}), ErrNilPlayer)
	})
}

func TestSeedPlayers(t *testing.T) {
	players := SeedPlayers()
	require.Len(t, players, 11)
	assert.Equal(t, PlayerID("1000"), players[0].ID)
	assert.Equal(t, "Steve", players[0].Name)
	assert.Equal(t, InstrumentGuitar, players[0].Instrument)

	// Mutating the returned slice must not leak into the next call
	players[0].Name = "Changed"
	assert.Equal(t, "Steve", SeedPlayers()[0].Name)
}
