package model

import "fmt"

// PlayerID uniquely identifies a player in the roster
type PlayerID string

// Instrument is the instrument a player plays
type Instrument string

// Instrument values, named as they appear in the GraphQL enum
const (
	InstrumentGuitar Instrument = "GUITAR"
	InstrumentPiano  Instrument = "PIANO"
)

// Instruments lists every known instrument in declaration order
func Instruments() []Instrument {
	return []Instrument{InstrumentGuitar, InstrumentPiano}
}

// Valid reports whether i is a known instrument
func (i Instrument) Valid() bool {
	switch i {
	case InstrumentGuitar, InstrumentPiano:
		return true
	}
	return false
}

// ParseInstrument converts an enum name into an Instrument
func ParseInstrument(s string) (Instrument, error) {
	i := Instrument(s)
	if !i.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidInstrument, s)
	}
	return i, nil
}

// UnmarshalText rejects unknown instrument names when decoding stored records
func (i *Instrument) UnmarshalText(text []byte) error {
	parsed, err := ParseInstrument(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// Player is a single entry in the roster
type Player struct {
	ID         PlayerID   `json:"id"`
	Name       string     `json:"name"`
	Instrument Instrument `json:"instrument"`
}

// Validate checks the fields a stored player must carry
func (p *Player) Validate() error {
	if p.ID == "" {
		return ErrEmptyPlayerID
	}
	if p.Name == "" {
		return fmt.Errorf("player %s: %w", p.ID, ErrEmptyPlayerName)
	}
	if !p.Instrument.Valid() {
		return fmt.Errorf("player %s: %w: %q", p.ID, ErrInvalidInstrument, p.Instrument)
	}
	return nil
}

// ValidatePlayers checks every player and that no id appears twice
func ValidatePlayers(players []*Player) error {
	seen := make(map[PlayerID]struct{}, len(players))
	for _, p := range players {
		if p == nil {
			return ErrNilPlayer
		}
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
