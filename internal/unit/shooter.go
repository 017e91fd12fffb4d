// internal/unit/shooter.go
package unit

import (
	"jungle-defense/internal/component"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/entity"
	"jungle-defense/internal/types"
)

// Shooter fires a projectile down its lane whenever the attack cooldown has
// elapsed and an attacker is at or ahead of its column. A ready shooter stays
// armed until a target shows up.
type Shooter struct {
	entity.Base
	projectile defs.ProjectileDefinition
	attack     component.Cooldown
	shots      int
}

func (s *Shooter) Update(dt float64) {
	w := s.World()
	if s.attack.Advance(dt) && w.HasBlockerAheadInLane(s.Cell(), types.GroupAttacker) {
		w.Create(NewProjectile(s.projectile, s.Cell()))
		s.attack.Reset()
		s.shots++
	}
	s.Base.Update(dt)
}

// Shots counts projectiles fired so far.
func (s *Shooter) Shots() int { return s.shots }

func (s *Shooter) Armed() bool { return s.attack.Ready() }
