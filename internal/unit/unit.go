// Package unit holds the concrete defender, attacker and projectile behaviors.
package unit

import (
	"fmt"

	"jungle-defense/internal/component"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/entity"
	"jungle-defense/internal/types"
	"jungle-defense/pkg/grid"
)

// NewDefender builds the variant selected by def.Behavior, snapped to cell.
func NewDefender(lib *defs.Library, def defs.DefenderDefinition, cell grid.Cell) (entity.Entity, error) {
	base := entity.NewBase(types.GroupDefender, def.ID, def.Health, def.Animation, def.Visuals)
	base.Kind = def.Kind
	base.PlaceAt(cell)

	switch def.Behavior {
	case defs.BehaviorShooter:
		proj, ok := lib.Projectiles[def.Shooter.Projectile]
		if !ok {
			return nil, fmt.Errorf("defender %s: projectile %s: %w", def.ID, def.Shooter.Projectile, defs.ErrUnknownKind)
		}
		return &Shooter{
			Base:       base,
			projectile: proj,
			attack:     component.Cooldown{Duration: def.Shooter.Cooldown},
		}, nil
	case defs.BehaviorProducer:
		return &Producer{
			Base:       base,
			stats:      *def.Producer,
			production: component.Cooldown{Duration: def.Producer.Delay},
		}, nil
	case defs.BehaviorDurable:
		return &Durable{Base: base, stats: *def.Durable}, nil
	case defs.BehaviorHealer:
		return &Healer{Base: base, stats: *def.Healer}, nil
	case defs.BehaviorBomb:
		return &Bomb{
			Base:   base,
			stats:  *def.Bomb,
			fuse:   component.Cooldown{Duration: def.Bomb.Fuse},
			linger: component.Cooldown{Duration: def.Bomb.Linger},
		}, nil
	case defs.BehaviorPassive:
		return &Passive{Base: base}, nil
	}
	return nil, fmt.Errorf("defender %s: behavior %q: %w", def.ID, def.Behavior, defs.ErrUnknownKind)
}
