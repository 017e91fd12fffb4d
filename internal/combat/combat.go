// Package combat resolves damage between entities and credits kills.
package combat

import (
	"jungle-defense/internal/defs"
	"jungle-defense/internal/entity"
	"jungle-defense/internal/event"
)

// Rewarder is implemented by entities that pay out when killed.
type Rewarder interface {
	Reward() defs.Reward
}

// ApplyDamage hits target and reports whether this hit killed it. Hits on an
// entity that is already dead are ignored, so of several lethal hits in one
// tick only the first reports a death.
func ApplyDamage(target entity.Entity, amount float64) bool {
	if target == nil || !target.Core().Alive() {
		return false
	}
	return target.TakeDamage(amount)
}

// Award credits the victim's reward to the world and announces the kill.
// Victims without a reward are ignored.
func Award(w *entity.World, victim entity.Entity) {
	r, ok := victim.(Rewarder)
	if !ok {
		return
	}
	reward := r.Reward()
	w.AddScore(reward.Score)
	w.AddBananas(reward.Bananas)

	b := victim.Core()
	w.Events().Dispatch(event.Event{
		Type: event.AttackerKilled,
		Data: event.AttackerKilledData{
			ID:      b.ID(),
			Kind:    b.DefID,
			Score:   reward.Score,
			Bananas: reward.Bananas,
		},
	})
}

// Strike applies damage and awards the kill if this hit was lethal.
func Strike(w *entity.World, target entity.Entity, amount float64) bool {
	if !ApplyDamage(target, amount) {
		return false
	}
	Award(w, target)
	return true
}

// BiteCap is the number of defenders one attacker may damage per tick.
func BiteCap(w *entity.World) int {
	if n := w.Rules().Combat.MaxBiteTargets; n > 0 {
		return n
	}
	return 1
}
