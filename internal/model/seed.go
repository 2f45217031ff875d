package model

// seedPlayers is the fixed roster loaded at startup
var seedPlayers = []Player{
	{ID: "1000", Name: "Steve", Instrument: InstrumentGuitar},
	{ID: "1001", Name: "Alice", Instrument: InstrumentPiano},
	{ID: "1002", Name: "Jimi", Instrument: InstrumentGuitar},
	{ID: "1003", Name: "Clara", Instrument: InstrumentPiano},
	{ID: "1004", Name: "Django", Instrument: InstrumentGuitar},
	{ID: "1005", Name: "Nina", Instrument: InstrumentPiano},
	{ID: "1006", Name: "Joni", Instrument: InstrumentGuitar},
	{ID: "1007", Name: "Herbie", Instrument: InstrumentPiano},
	{ID: "1008", Name: "Rosetta", Instrument: InstrumentGuitar},
	{ID: "1009", Name: "Thelonious", Instrument: InstrumentPiano},
	{ID: "1010", Name: "Wes", Instrument: InstrumentGuitar},
}

// SeedPlayers returns a fresh copy of the startup roster.
// Callers may keep or modify the result without affecting later calls.
func SeedPlayers() []*Player {
	players := make([]*Player, len(seedPlayers))
	for i := range seedPlayers {
		p := seedPlayers[i]
		players[i] = &p
	}
	return players
}
