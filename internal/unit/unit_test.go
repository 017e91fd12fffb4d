package unit

import (
	"math"
	"testing"

	"jungle-defense/internal/config"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/entity"
	"jungle-defense/internal/types"
	"jungle-defense/internal/utils"
	"jungle-defense/pkg/grid"
)

type frames int

func (f frames) FrameCount(string) int { return int(f) }

type fixture struct {
	t   *testing.T
	w   *entity.World
	lib *defs.Library
	dt  float64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	lib, err := defs.Default()
	if err != nil {
		t.Fatalf("defs.Default() error = %v", err)
	}
	cfg := config.Defaults()
	w := entity.NewWorld(cfg, utils.NewPRNGService(1), frames(3), nil)
	return &fixture{t: t, w: w, lib: lib, dt: cfg.DeltaTime()}
}

func (f *fixture) defender(id string, cell grid.Cell) entity.Entity {
	f.t.Helper()
	e, err := NewDefender(f.lib, f.lib.Defenders[id], cell)
	if err != nil {
		f.t.Fatalf("NewDefender(%s) error = %v", id, err)
	}
	f.w.Create(e)
	return e
}

// attacker spawns kind in row and moves it to x.
func (f *fixture) attacker(kind string, row int, x float64) *Attacker {
	a := NewAttacker(f.lib.Attackers[kind], row)
	f.w.Create(a)
	a.Position.X = x
	return a
}

func (f *fixture) ticks(n int) {
	for i := 0; i < n; i++ {
		f.w.Tick(f.dt)
	}
}

func (f *fixture) count(group types.Group) int {
	n := 0
	f.w.Each(func(e entity.Entity) bool {
		if e.Core().Group == group {
			n++
		}
		return true
	})
	return n
}

func TestAttackerSpawnsAtFarEdgeAndWalks(t *testing.T) {
	f := newFixture(t)
	a := NewAttacker(f.lib.Attackers["woodchopper"], 3)
	f.w.Create(a)

	if a.Position.X != f.w.Rules().Field.Width || a.Position.Y != grid.GridToFree(3) {
		t.Fatalf("spawn position = %+v", a.Position)
	}
	if a.Animation.Frames != 3 {
		t.Errorf("frames = %d, want 3 from the frame source", a.Animation.Frames)
	}

	start := a.Position.X
	f.ticks(60)
	if moved := start - a.Position.X; math.Abs(moved-100) > 0.01 {
		t.Errorf("moved %v units in one second, want ~100", moved)
	}
	if a.Cell().Row != 3 {
		t.Errorf("attacker left its lane: row %d", a.Cell().Row)
	}
}

func TestAttackerChewsUpToBiteCap(t *testing.T) {
	f := newFixture(t)
	cell := grid.Cell{Col: 5, Row: 3}
	var trees []entity.Entity
	for i := 0; i < 3; i++ {
		trees = append(trees, f.defender("tree", cell))
	}
	x := grid.GridToFree(cell.Col) + 10
	a := f.attacker("woodchopper", cell.Row, x)

	f.ticks(60)

	if a.Position.X != x {
		t.Errorf("chewing attacker moved: %v -> %v", x, a.Position.X)
	}
	if !a.Chewing() {
		t.Error("Chewing() = false")
	}
	damaged := 0
	for _, tree := range trees {
		h := tree.Core().Health
		if h.Value < h.Max {
			damaged++
			if math.Abs(h.Value-65) > 0.01 {
				t.Errorf("tree health = %v, want ~65 after 1s of 35 dps", h.Value)
			}
		}
	}
	if damaged != 2 {
		t.Errorf("%d trees damaged, want the bite cap of 2", damaged)
	}
}

func TestAttackerResumesAfterEatingDefender(t *testing.T) {
	f := newFixture(t)
	cell := grid.Cell{Col: 5, Row: 1}
	f.defender("tree", cell)
	a := f.attacker("bulldozer", cell.Row, grid.GridToFree(cell.Col)+40)

	// 100 health at 300 dps is gone in 20 ticks.
	f.ticks(25)
	if f.count(types.GroupDefender) != 0 {
		t.Fatal("tree survived the bulldozer")
	}
	if a.Velocity.X != f.lib.Attackers["bulldozer"].Velocity {
		t.Errorf("velocity = %v, want normal walking speed", a.Velocity.X)
	}
}

func TestAttackerKnockback(t *testing.T) {
	f := newFixture(t)
	a := f.attacker("woodchopper", 2, 800)

	if a.TakeDamage(20) {
		t.Fatal("20 damage killed a woodchopper")
	}
	if a.Knockback() != 10 {
		t.Fatalf("knockback = %v, want 10", a.Knockback())
	}
	f.ticks(1)
	want := 800 + 10 - 100*f.dt
	if math.Abs(a.Position.X-want) > 1e-9 {
		t.Errorf("x = %v, want %v", a.Position.X, want)
	}
	if math.Abs(a.Knockback()-(10-15*f.dt)) > 1e-9 {
		t.Errorf("knockback after a tick = %v", a.Knockback())
	}

	f.ticks(60)
	if a.Knockback() != 0 {
		t.Errorf("knockback did not decay to zero: %v", a.Knockback())
	}
}

func TestGameOverOnlyPastTheBoundaryColumn(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"inside column 0", 50, false},
		{"slightly negative truncates to column 0", -10, false},
		{"column -1", -90, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.attacker("woodchopper", 0, tt.x)
			f.ticks(1)
			if f.w.GameOver() != tt.want {
				t.Errorf("GameOver() = %v, want %v", f.w.GameOver(), tt.want)
			}
		})
	}
}

func TestShooterFiresOneProjectileAfterCooldown(t *testing.T) {
	f := newFixture(t)
	shooter := f.defender("monkey", grid.Cell{Col: 2, Row: 2}).(*Shooter)
	idle := f.defender("monkey", grid.Cell{Col: 2, Row: 6}).(*Shooter)
	f.attacker("tank", 2, grid.GridToFree(12))

	ticks := 0
	for shooter.Shots() == 0 && ticks < 200 {
		if f.count(types.GroupProjectile) != 0 {
			t.Fatalf("projectile before the cooldown elapsed (tick %d)", ticks)
		}
		f.ticks(1)
		ticks++
	}
	if shooter.Shots() != 1 {
		t.Fatalf("no shot after %d ticks", ticks)
	}
	if ticks < 119 || ticks > 121 {
		t.Errorf("first shot on tick %d, want ~120 for a 2s cooldown", ticks)
	}

	var projectiles []entity.Entity
	f.w.Each(func(e entity.Entity) bool {
		if e.Core().Group == types.GroupProjectile {
			projectiles = append(projectiles, e)
		}
		return true
	})
	if len(projectiles) != 1 {
		t.Fatalf("%d projectiles, want 1", len(projectiles))
	}
	p := projectiles[0].Core()
	wantX, wantY := grid.Cell{Col: 2, Row: 2}.Origin()
	if p.Position.X != wantX || p.Position.Y != wantY+f.lib.Projectiles["stone"].OffsetY {
		t.Errorf("projectile at %+v, want (%v, %v+offset)", p.Position, wantX, wantY)
	}

	if idle.Shots() != 0 || !idle.Armed() {
		t.Errorf("shooter with an empty lane: shots %d, armed %v", idle.Shots(), idle.Armed())
	}
}

func TestShooterIgnoresAttackersBehindIt(t *testing.T) {
	f := newFixture(t)
	shooter := f.defender("heavy_monkey", grid.Cell{Col: 8, Row: 4}).(*Shooter)
	a := f.attacker("woodchopper", 4, grid.GridToFree(3))
	a.def.Velocity = 0

	f.ticks(200)
	if shooter.Shots() != 0 {
		t.Errorf("shot %d times at an attacker behind it", shooter.Shots())
	}
}

func TestProjectileKillsWeakAttackerSameTick(t *testing.T) {
	f := newFixture(t)
	def := f.lib.Attackers["woodchopper"]
	def.Health = 10
	a := NewAttacker(def, 2)
	f.w.Create(a)
	a.Position.X = grid.GridToFree(2) + 12

	p := NewProjectile(f.lib.Projectiles["stone"], grid.Cell{Col: 2, Row: 2})
	f.w.Create(p)

	f.ticks(1)
	if a.Alive() {
		t.Fatal("attacker survived 15 damage with 10 health")
	}
	if _, ok := f.w.Get(a.ID()); ok || f.w.Len() != 0 {
		t.Errorf("live entities = %d, want attacker and projectile gone", f.w.Len())
	}
	if f.w.Score() != def.Reward.Score {
		t.Errorf("score = %d, want %d", f.w.Score(), def.Reward.Score)
	}
}

func TestProjectileHitsOnlyOnce(t *testing.T) {
	f := newFixture(t)
	first := f.attacker("tank", 2, grid.GridToFree(2)+10)
	second := f.attacker("tank", 2, grid.GridToFree(2)+12)
	f.w.Create(NewProjectile(f.lib.Projectiles["stone"], grid.Cell{Col: 2, Row: 2}))

	f.ticks(1)
	lost := (first.Health.Max - first.Health.Value) + (second.Health.Max - second.Health.Value)
	if lost != 15 {
		t.Errorf("total damage = %v, want a single 15 point hit", lost)
	}
	if f.count(types.GroupProjectile) != 0 {
		t.Error("projectile survived its hit")
	}
}

func TestProjectileExpires(t *testing.T) {
	f := newFixture(t)
	p := NewProjectile(f.lib.Projectiles["stone"], grid.Cell{Col: 0, Row: 1})
	f.w.Create(p)
	startY := p.Position.Y

	f.ticks(30)
	if !p.Alive() {
		t.Fatal("projectile expired early")
	}
	if p.Position.Y <= startY {
		t.Errorf("gravity did not pull the projectile down: %v -> %v", startY, p.Position.Y)
	}
	if p.Velocity.X >= f.lib.Projectiles["stone"].Speed {
		t.Errorf("drag did not slow the projectile: %v", p.Velocity.X)
	}
	f.ticks(35)
	if p.Alive() {
		t.Error("projectile outlived its lifespan")
	}
}

func TestProducerNeedsTree(t *testing.T) {
	f := newFixture(t)
	prod := f.defender("prod_monkey", grid.Cell{Col: 4, Row: 4}).(*Producer)
	start := f.w.Bananas()

	f.ticks(6 * 60)
	if f.w.Bananas() != start || !prod.Animation.Paused {
		t.Fatalf("producer without a tree: bananas %+d, paused %v", f.w.Bananas()-start, prod.Animation.Paused)
	}

	f.defender("tree", grid.Cell{Col: 3, Row: 4})
	f.ticks(5*60 + 5)
	if f.w.Bananas() != start+1 || prod.Produced() != 1 {
		t.Errorf("bananas %+d after 5s next to a tree, want +1", f.w.Bananas()-start)
	}
	if prod.Animation.Paused {
		t.Error("working producer is still paused")
	}
}

func TestDurableCondition(t *testing.T) {
	f := newFixture(t)
	d := f.defender("tank_monkey", grid.Cell{Col: 1, Row: 1}).(*Durable)
	tests := []struct {
		health float64
		want   Condition
	}{
		{1000, Healthy},
		{667, Healthy},
		{666, Damaged},
		{334, Damaged},
		{333, Critical},
		{1, Critical},
	}
	for _, tt := range tests {
		d.Health.Value = tt.health
		f.ticks(1)
		if got := d.Condition(); got != tt.want {
			t.Errorf("health %v: Condition() = %v, want %v", tt.health, got, tt.want)
		}
		if d.Animation.Frame != int(tt.want) {
			t.Errorf("health %v: frame %d, want %d", tt.health, d.Animation.Frame, int(tt.want))
		}
	}
}

func TestHealerVisitsWoundedDefender(t *testing.T) {
	f := newFixture(t)
	h := f.defender("med_monkey", grid.Cell{Col: 1, Row: 1}).(*Healer)
	patient := f.defender("monkey", grid.Cell{Col: 3, Row: 1})
	patient.Core().Health.Value = 50

	reached := false
	for i := 0; i < 10*60 && !reached; i++ {
		f.ticks(1)
		reached = h.State() == HealerHealing
		if h.Target() == h.ID() {
			t.Fatal("healer targeted itself")
		}
	}
	if !reached {
		t.Fatalf("healer never reached its patient, state %v", h.State())
	}
	for i := 0; i < 200 && h.State() == HealerHealing; i++ {
		f.ticks(1)
	}
	if got := patient.Core().Health.Value; got != 80 {
		t.Errorf("patient health = %v, want 80 after one 30 point visit", got)
	}

	// The only wounded defender was just visited, so the healer rests.
	f.ticks(2)
	if h.State() != HealerIdle || h.Target() != 0 {
		t.Errorf("state = %v, target = %d, want idle without target", h.State(), h.Target())
	}
}

func TestHealerRespectsOverload(t *testing.T) {
	f := newFixture(t)
	h := f.defender("med_monkey", grid.Cell{Col: 2, Row: 2}).(*Healer)
	patient := f.defender("tree", grid.Cell{Col: 2, Row: 3})
	patient.Core().Health.Value = 95

	top := patient.Core().Health.Max + f.lib.Defenders["med_monkey"].Healer.Overload
	for i := 0; i < 15*60; i++ {
		f.ticks(1)
		if patient.Core().Health.Value > top {
			t.Fatalf("health %v above top + overload %v", patient.Core().Health.Value, top)
		}
	}
	if patient.Core().Health.Value != top {
		t.Errorf("health = %v, want healed up to %v", patient.Core().Health.Value, top)
	}
	if h.Health.Value != h.Health.Max {
		t.Errorf("healer health changed: %v", h.Health.Value)
	}
}

func TestHealerDropsDeadPatient(t *testing.T) {
	f := newFixture(t)
	h := f.defender("med_monkey", grid.Cell{Col: 1, Row: 5}).(*Healer)
	patient := f.defender("monkey", grid.Cell{Col: 9, Row: 5})
	patient.Core().Health.Value = 10

	for i := 0; i < 10*60 && h.State() != HealerMoving; i++ {
		f.ticks(1)
	}
	if h.State() != HealerMoving {
		t.Fatalf("state = %v, want moving", h.State())
	}
	patient.Core().Destroy()
	f.ticks(1)
	if h.State() == HealerMoving || h.State() == HealerHealing {
		t.Errorf("healer still chasing a dead patient: %v", h.State())
	}
	if h.Velocity.X != 0 || h.Velocity.Y != 0 {
		t.Errorf("healer still moving: %+v", h.Velocity)
	}
}

func TestBombArmsDetonatesOnceAndDisappears(t *testing.T) {
	f := newFixture(t)
	bomb := f.defender("bomb", grid.Cell{Col: 5, Row: 3}).(*Bomb)
	tank := f.attacker("tank", 3, grid.GridToFree(6)+40)
	side := f.attacker("woodchopper", 2, grid.GridToFree(5)+40)
	far := f.attacker("woodchopper", 3, grid.GridToFree(9)+40)
	for _, a := range []*Attacker{tank, side, far} {
		a.def.Velocity = 0
	}

	f.ticks(60)
	if bomb.State() != BombDormant || tank.Health.Value != tank.Health.Max {
		t.Fatalf("undamaged bomb went off: state %v", bomb.State())
	}

	bomb.TakeDamage(1)
	if bomb.State() != BombArmed {
		t.Fatalf("state after a hit = %v, want armed", bomb.State())
	}
	f.ticks(13)
	if bomb.State() != BombDetonated {
		t.Fatalf("state after the fuse = %v, want detonated", bomb.State())
	}
	if side.Alive() {
		t.Error("woodchopper next to the bomb survived 200 damage")
	}
	if !far.Alive() || far.Health.Value != far.Health.Max {
		t.Error("attacker outside the neighborhood was hit")
	}

	f.ticks(10)
	if bomb.Alive() {
		t.Error("bomb still present after its linger time")
	}
	if tank.Health.Value != tank.Health.Max-200 {
		t.Errorf("tank health = %v, want exactly one blast", tank.Health.Value)
	}
}

func TestNewDefenderRejectsUnknownBehavior(t *testing.T) {
	f := newFixture(t)
	def := f.lib.Defenders["tree"]
	def.Behavior = "DANCER"
	if _, err := NewDefender(f.lib, def, grid.Cell{}); err == nil {
		t.Error("NewDefender accepted an unknown behavior")
	}
	e, err := NewDefender(f.lib, f.lib.Defenders["tree"], grid.Cell{Col: 2, Row: 3})
	if err != nil {
		t.Fatalf("NewDefender(tree) error = %v", err)
	}
	if e.Core().Kind != "tree" {
		t.Errorf("tree kind = %q", e.Core().Kind)
	}
	if x, y := e.Core().Position.X, e.Core().Position.Y; x != 168 || y != 252 {
		t.Errorf("tree not snapped to its cell origin: (%v, %v)", x, y)
	}
}
