// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed units.yaml
var defaultUnits []byte

// Library holds every unit definition of a session, keyed by id.
type Library struct {
	Attackers   map[string]AttackerDefinition
	Defenders   map[string]DefenderDefinition
	Projectiles map[string]ProjectileDefinition
	// Placeables is the toolbar order of defender ids; the selected placeable
	// index of the input surface points into it.
	Placeables  []string
	SpawnTables []SpawnTable
}

type unitsFile struct {
	Attackers   []AttackerDefinition   `yaml:"attackers"`
	Defenders   []DefenderDefinition   `yaml:"defenders"`
	Projectiles []ProjectileDefinition `yaml:"projectiles"`
	Placeables  []string               `yaml:"placeables"`
	SpawnTables []SpawnTable           `yaml:"spawn_tables"`
}

// Default returns the library built from the embedded units.yaml.
func Default() (*Library, error) {
	return Parse(defaultUnits)
}

// Load reads unit definitions from a YAML file. An empty path loads the embedded defaults.
func Load(path string) (*Library, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read units %s: %w", path, err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("units %s: %w", path, err)
	}
	return lib, nil
}

// Parse decodes and validates a units document.
func Parse(data []byte) (*Library, error) {
	var f unitsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse units: %w", err)
	}

	lib := &Library{
		Attackers:   make(map[string]AttackerDefinition, len(f.Attackers)),
		Defenders:   make(map[string]DefenderDefinition, len(f.Defenders)),
		Projectiles: make(map[string]ProjectileDefinition, len(f.Projectiles)),
		Placeables:  f.Placeables,
		SpawnTables: f.SpawnTables,
	}
	for _, def := range f.Attackers {
		lib.Attackers[def.ID] = def
	}
	for _, def := range f.Defenders {
		lib.Defenders[def.ID] = def
	}
	for _, def := range f.Projectiles {
		lib.Projectiles[def.ID] = def
	}

	if err := lib.validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

func (l *Library) validate() error {
	for id, def := range l.Defenders {
		if err := def.validate(l); err != nil {
			return fmt.Errorf("defender %s: %w", id, err)
		}
	}
	for _, id := range l.Placeables {
		if _, ok := l.Defenders[id]; !ok {
			return fmt.Errorf("placeable %s: %w", id, ErrUnknownKind)
		}
	}
	if len(l.SpawnTables) == 0 {
		return fmt.Errorf("no spawn tables")
	}
	for _, t := range l.SpawnTables {
		for _, e := range t.Entries {
			if _, ok := l.Attackers[e.AttackerID]; !ok {
				return fmt.Errorf("spawn table %d: attacker %s: %w", t.MinWave, e.AttackerID, ErrUnknownKind)
			}
			if e.Weight <= 0 {
				return fmt.Errorf("spawn table %d: attacker %s has weight %d", t.MinWave, e.AttackerID, e.Weight)
			}
		}
	}
	if l.TableFor(0) == nil {
		return fmt.Errorf("no spawn table for wave 0")
	}
	return nil
}

func (d DefenderDefinition) validate(l *Library) error {
	if d.Health <= 0 {
		return fmt.Errorf("health must be positive")
	}
	switch d.Behavior {
	case BehaviorShooter:
		if d.Shooter == nil {
			return fmt.Errorf("missing shooter stats")
		}
		if _, ok := l.Projectiles[d.Shooter.Projectile]; !ok {
			return fmt.Errorf("projectile %s: %w", d.Shooter.Projectile, ErrUnknownKind)
		}
	case BehaviorProducer:
		if d.Producer == nil {
			return fmt.Errorf("missing producer stats")
		}
	case BehaviorDurable:
		if d.Durable == nil || d.Durable.CriticalAt > d.Durable.DamagedAt {
			return fmt.Errorf("durable thresholds missing or inverted")
		}
	case BehaviorHealer:
		if d.Healer == nil {
			return fmt.Errorf("missing healer stats")
		}
	case BehaviorBomb:
		if d.Bomb == nil {
			return fmt.Errorf("missing bomb stats")
		}
	case BehaviorPassive:
	default:
		return fmt.Errorf("behavior %q: %w", d.Behavior, ErrUnknownKind)
	}
	return nil
}
