// internal/unit/projectile.go
package unit

import (
	"jungle-defense/internal/combat"
	"jungle-defense/internal/component"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/entity"
	"jungle-defense/internal/types"
	"jungle-defense/pkg/grid"
)

// Projectile flies from its launch cell on a drag and gravity arc and hits the
// first attacker within reach. It never pierces.
type Projectile struct {
	entity.Base
	def    defs.ProjectileDefinition
	launch grid.Cell
	life   component.Cooldown
}

func NewProjectile(def defs.ProjectileDefinition, launch grid.Cell) *Projectile {
	return &Projectile{
		Base:   entity.NewBase(types.GroupProjectile, def.ID, 1, def.Animation, def.Visuals),
		def:    def,
		launch: launch,
		life:   component.Cooldown{Duration: def.Lifespan},
	}
}

func (p *Projectile) OnReady() {
	p.Base.OnReady()
	p.PlaceAt(p.launch)
	p.Position.Y += p.def.OffsetY
	p.Velocity.X = p.def.Speed + p.World().Rand().Spread(p.def.Jitter)
	p.Velocity.Y = p.def.InitialVY
}

// TakeDamage is a no-op; projectiles are only removed by hitting or expiring.
func (p *Projectile) TakeDamage(float64) bool { return false }

func (p *Projectile) Update(dt float64) {
	p.Velocity.X -= p.def.Drag * dt
	p.Velocity.Y += p.def.Gravity * dt

	if p.life.Advance(dt) {
		p.Destroy()
		return
	}

	w := p.World()
	if hits := w.QueryRadius(p.Position.X, p.Position.Y, p.def.HitRadius, types.GroupAttacker); len(hits) > 0 {
		combat.Strike(w, hits[0], p.def.Damage)
		p.Destroy()
		return
	}

	p.Base.Update(dt)
}
