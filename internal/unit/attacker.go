// internal/unit/attacker.go
package unit

import (
	"jungle-defense/internal/combat"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/entity"
	"jungle-defense/internal/types"
	"jungle-defense/pkg/grid"
)

// Attacker walks down its lane toward column 0 and chews through whatever
// defenders stand in its cell.
type Attacker struct {
	entity.Base
	def       defs.AttackerDefinition
	row       int
	knockback float64
	chewing   bool
}

func NewAttacker(def defs.AttackerDefinition, row int) *Attacker {
	return &Attacker{
		Base: entity.NewBase(types.GroupAttacker, def.ID, def.Health, def.Animation, def.Visuals),
		def:  def,
		row:  row,
	}
}

// OnReady puts the attacker at the far edge of its lane.
func (a *Attacker) OnReady() {
	a.Base.OnReady()
	a.Position.X = a.World().Rules().Field.Width
	a.Position.Y = grid.GridToFree(a.row)
	a.Velocity.X = a.def.Velocity
}

func (a *Attacker) Reward() defs.Reward { return a.def.Reward }

// Chewing reports whether the attacker stood on a defender last tick.
func (a *Attacker) Chewing() bool { return a.chewing }

func (a *Attacker) Knockback() float64 { return a.knockback }

// TakeDamage pushes the attacker back in proportion to the damage.
func (a *Attacker) TakeDamage(amount float64) bool {
	if a.Alive() {
		a.knockback += amount * a.def.KnockbackFactor
	}
	return a.Base.TakeDamage(amount)
}

func (a *Attacker) Update(dt float64) {
	w := a.World()

	victims := w.QueryCell(a.Cell(), types.GroupDefender)
	a.chewing = len(victims) > 0
	if a.chewing {
		a.Velocity.X = 0
		bite := a.def.DamagePerSecond * dt
		limit := combat.BiteCap(w)
		for i, v := range victims {
			if i >= limit {
				break
			}
			combat.ApplyDamage(v, bite)
		}
	} else {
		a.Velocity.X = a.def.Velocity
	}

	a.Position.X += a.knockback
	if a.knockback > 0 {
		a.knockback -= a.def.KnockbackDecay * dt
		if a.knockback < 0 {
			a.knockback = 0
		}
	}

	a.Base.Update(dt)

	if a.Cell().Col < 0 {
		w.SetGameOver()
	}
}
