package defs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLibrary(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	if len(lib.Placeables) != 7 {
		t.Errorf("len(Placeables) = %d, want 7", len(lib.Placeables))
	}
	woodchopper, ok := lib.Attackers["woodchopper"]
	if !ok {
		t.Fatal("woodchopper missing")
	}
	if woodchopper.Velocity != -100 || woodchopper.Health != 100 {
		t.Errorf("woodchopper = %+v, want velocity -100 health 100", woodchopper)
	}
	if woodchopper.Visuals.Color.A != 255 {
		t.Errorf("woodchopper color alpha = %d, want 255", woodchopper.Visuals.Color.A)
	}
	stone := lib.Projectiles["stone"]
	if stone.Damage != 15 || stone.Lifespan != 1.0 {
		t.Errorf("stone = %+v", stone)
	}
	prod := lib.Defenders["prod_monkey"]
	if prod.Producer == nil || prod.Producer.RequiresNeighbor != "tree" {
		t.Errorf("prod_monkey producer = %+v, want tree requirement", prod.Producer)
	}
	if lib.Defenders["tree"].Kind != "tree" {
		t.Errorf("tree kind = %q", lib.Defenders["tree"].Kind)
	}
	if !lib.Defenders["tank_monkey"].Animation.Paused {
		t.Error("tank_monkey animation should start paused")
	}
}

func TestTableFor(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		waves   int
		entries int
	}{
		{0, 1},
		{1, 4},
		{2, 4},
		{3, 4},
		{50, 4},
	}
	for _, tt := range tests {
		if got := len(lib.TableFor(tt.waves)); got != tt.entries {
			t.Errorf("len(TableFor(%d)) = %d, want %d", tt.waves, got, tt.entries)
		}
	}
	if lib.TableFor(0)[0].AttackerID != "woodchopper" {
		t.Errorf("wave 0 table should only spawn woodchoppers")
	}
	if lib.TableFor(3)[0].Weight == lib.TableFor(1)[0].Weight {
		t.Errorf("wave 3 table should differ from wave 1 table")
	}
}

func TestParseRejectsBrokenReferences(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		unknown bool
		wantErr string
	}{
		{
			name: "shooter with missing projectile",
			doc: `
attackers: [{id: a, health: 1}]
defenders: [{id: d, behavior: SHOOTER, health: 1, shooter: {cooldown: 1, projectile: nope}}]
spawn_tables: [{min_wave: 0, entries: [{attacker: a, weight: 1}]}]
`,
			unknown: true,
		},
		{
			name: "spawn table with unknown attacker",
			doc: `
attackers: [{id: a, health: 1}]
spawn_tables: [{min_wave: 0, entries: [{attacker: b, weight: 1}]}]
`,
			unknown: true,
		},
		{
			name: "unknown placeable",
			doc: `
attackers: [{id: a, health: 1}]
placeables: [ghost]
spawn_tables: [{min_wave: 0, entries: [{attacker: a, weight: 1}]}]
`,
			unknown: true,
		},
		{
			name: "zero weight",
			doc: `
attackers: [{id: a, health: 1}]
spawn_tables: [{min_wave: 0, entries: [{attacker: a, weight: 0}]}]
`,
			wantErr: "weight",
		},
		{
			name: "no wave zero table",
			doc: `
attackers: [{id: a, health: 1}]
spawn_tables: [{min_wave: 2, entries: [{attacker: a, weight: 1}]}]
`,
			wantErr: "wave 0",
		},
		{
			name: "inverted durable thresholds",
			doc: `
attackers: [{id: a, health: 1}]
defenders: [{id: d, behavior: DURABLE, health: 1, durable: {damaged_at: 0.2, critical_at: 0.5}}]
spawn_tables: [{min_wave: 0, entries: [{attacker: a, weight: 1}]}]
`,
			wantErr: "inverted",
		},
		{
			name:    "not yaml",
			doc:     "attackers: [",
			wantErr: "parse units",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if tt.unknown && !errors.Is(err, ErrUnknownKind) {
				t.Errorf("Parse() error = %v, want ErrUnknownKind", err)
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	if err := os.WriteFile(path, defaultUnits, 0o644); err != nil {
		t.Fatal(err)
	}
	lib, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(lib.Attackers) != 4 {
		t.Errorf("len(Attackers) = %d, want 4", len(lib.Attackers))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file returned nil error")
	}
}
