package program

// Record is a factory program's static name and genre metadata. Records
// are lookup data only: loaded once, never mutated, never sent anywhere.
type Record struct {
	Name  string
	Genre string
}

// presetRecords covers the factory preset programs this tool ships
// metadata for. Slots absent from the table still resolve and select
// normally; they just have no display name.
var presetRecords = map[Identity]Record{
	{'A', 1}:  {"Trance Saw", "Trance"},
	{'A', 2}:  {"Super Saw Ld", "Trance"},
	{'A', 3}:  {"Juno Str", "Pop"},
	{'A', 4}:  {"JD Piano", "Pop"},
	{'A', 5}:  {"FM Electric", "R&B"},
	{'A', 6}:  {"Fat Sub Bass", "House"},
	{'A', 7}:  {"Acid Line", "Techno"},
	{'A', 8}:  {"SEQ Pluck", "EDM"},
	{'A', 9}:  {"Soft Pad", "Ambient"},
	{'A', 10}: {"Sweep Pad", "Ambient"},
	{'A', 11}: {"Dist Synth Ld", "Rock"},
	{'A', 12}: {"Unison Brass", "Funk"},
	{'A', 13}: {"Talk Vocoder", "Electro"},
	{'A', 14}: {"House Organ", "House"},
	{'A', 15}: {"Bell Keys", "Pop"},
	{'A', 16}: {"Wobble Bass", "Dubstep"},
	{'B', 1}:  {"TR-909 Kit", "Dance"},
	{'B', 2}:  {"TR-808 Kit", "Hip-Hop"},
	{'B', 3}:  {"TR-707 Kit", "Dance"},
	{'B', 4}:  {"CR-78 Kit", "Pop"},
	{'C', 1}:  {"Analog Strings", "Pop"},
	{'C', 2}:  {"Poly Key", "Pop"},
	{'C', 3}:  {"Mono Lead", "Rock"},
	{'C', 4}:  {"Pulse Bass", "Electro"},
}

// LookupRecord returns the static metadata for a program, if any is known.
func LookupRecord(id Identity) (Record, bool) {
	rec, ok := presetRecords[id]
	return rec, ok
}
