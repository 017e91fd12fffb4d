// internal/entity/entity.go
package entity

import (
	"jungle-defense/internal/component"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/types"
	"jungle-defense/pkg/grid"
)

// Entity is the capability set every simulated object provides. Variants embed
// Base and override what they need.
type Entity interface {
	Core() *Base
	// OnReady runs once, right after the world has assigned the id.
	OnReady()
	Update(dt float64)
	// TakeDamage reports whether this hit killed the entity.
	TakeDamage(amount float64) bool
}

// System runs once per tick after every entity has been updated.
type System interface {
	Update(dt float64)
}

// FrameSource reports how many animation frames a sprite directory holds.
type FrameSource interface {
	FrameCount(res string) int
}

// Base is the state shared by all entities. The world pointer is a
// back reference only valid while the entity is alive.
type Base struct {
	id    types.EntityID
	world *World
	alive bool

	Group     types.Group
	Kind      string // adjacency tag, e.g. "tree"
	DefID     string
	Position  component.Position
	Velocity  component.Velocity
	Health    component.Health
	Animation component.Animation
	Visuals   defs.Visuals
}

// NewBase prepares the shared state of a variant before it is handed to World.Create.
func NewBase(group types.Group, defID string, health float64, anim defs.Animation, visuals defs.Visuals) Base {
	return Base{
		Group:  group,
		DefID:  defID,
		Health: component.Health{Value: health, Max: health},
		Animation: component.Animation{
			Res:           anim.Res,
			FrameDuration: anim.FrameDuration,
			Paused:        anim.Paused,
			Frames:        1,
		},
		Visuals: visuals,
	}
}

func (b *Base) Core() *Base { return b }

func (b *Base) ID() types.EntityID { return b.id }

func (b *Base) World() *World { return b.world }

func (b *Base) Alive() bool { return b.alive }

// Cell is the grid cell containing the entity's position.
func (b *Base) Cell() grid.Cell {
	return grid.CellOf(b.Position.X, b.Position.Y)
}

// PlaceAt snaps the entity to the top-left corner of cell.
func (b *Base) PlaceAt(cell grid.Cell) {
	b.Position.X, b.Position.Y = cell.Origin()
}

// OnReady loads the frame count of the entity's sprite sequence.
func (b *Base) OnReady() {
	if b.world == nil || b.world.frames == nil {
		return
	}
	if n := b.world.frames.FrameCount(b.Animation.Res); n > 0 {
		b.Animation.Frames = n
	}
}

// Update advances position and animation. Variants call it from their own Update.
func (b *Base) Update(dt float64) {
	b.Position.Advance(b.Velocity, dt)
	b.Animation.Advance(dt)
}

// TakeDamage subtracts amount and destroys the entity once health reaches zero.
// A dead entity ignores further damage, so death is reported exactly once.
func (b *Base) TakeDamage(amount float64) bool {
	if !b.alive {
		return false
	}
	b.Health.Value -= amount
	if b.Health.Value <= 0 {
		b.Destroy()
		return true
	}
	return false
}

// Heal raises health by amount, capped at top health plus overload, and
// returns the amount actually applied.
func (b *Base) Heal(amount, overload float64) float64 {
	if !b.alive || amount <= 0 {
		return 0
	}
	limit := b.Health.Max + overload
	if b.Health.Value >= limit {
		return 0
	}
	applied := amount
	if b.Health.Value+applied > limit {
		applied = limit - b.Health.Value
	}
	b.Health.Value += applied
	return applied
}

// Destroy removes the entity from its world.
func (b *Base) Destroy() {
	if b.world != nil {
		b.world.Destroy(b.id)
	}
}
