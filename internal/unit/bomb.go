// internal/unit/bomb.go
package unit

import (
	"jungle-defense/internal/combat"
	"jungle-defense/internal/component"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/entity"
	"jungle-defense/internal/types"
)

type BombState int

const (
	BombDormant BombState = iota
	BombArmed
	BombDetonated
)

// Bomb arms on the first hit it takes, blasts every attacker in its
// neighborhood once the fuse burns down, and disappears after the blast.
type Bomb struct {
	entity.Base
	stats  defs.BombStats
	state  BombState
	fuse   component.Cooldown
	linger component.Cooldown
}

func (b *Bomb) State() BombState { return b.state }

func (b *Bomb) TakeDamage(amount float64) bool {
	if b.state == BombDormant && b.Alive() {
		b.state = BombArmed
		b.Animation.Paused = false
	}
	return b.Base.TakeDamage(amount)
}

func (b *Bomb) Update(dt float64) {
	switch b.state {
	case BombArmed:
		if b.fuse.Advance(dt) {
			b.detonate()
		}
	case BombDetonated:
		if b.linger.Advance(dt) {
			b.Destroy()
			return
		}
	}
	b.Base.Update(dt)
}

func (b *Bomb) detonate() {
	w := b.World()
	for _, victim := range w.QueryNeighborhood(b.Cell(), types.GroupAttacker) {
		combat.Strike(w, victim, b.stats.Damage)
	}
	b.state = BombDetonated
}
