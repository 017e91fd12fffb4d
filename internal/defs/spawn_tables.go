// internal/defs/spawn_tables.go
package defs

// SpawnEntry is one row of a spawn table. Weight is the relative chance of
// AttackerID being picked.
type SpawnEntry struct {
	AttackerID string `yaml:"attacker"`
	Weight     int    `yaml:"weight"`
}

// SpawnTable lists the attackers the director may spawn once MinWave waves have passed.
type SpawnTable struct {
	MinWave int          `yaml:"min_wave"`
	Entries []SpawnEntry `yaml:"entries"`
}

// TableFor returns the table with the highest MinWave not above wavesPassed.
func (l *Library) TableFor(wavesPassed int) []SpawnEntry {
	var best *SpawnTable
	for i := range l.SpawnTables {
		t := &l.SpawnTables[i]
		if t.MinWave > wavesPassed {
			continue
		}
		if best == nil || t.MinWave > best.MinWave {
			best = t
		}
	}
	if best == nil {
		return nil
	}
	return best.Entries
}
