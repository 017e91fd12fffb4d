// internal/unit/healer.go
package unit

import (
	"jungle-defense/internal/defs"
	"jungle-defense/internal/entity"
	"jungle-defense/internal/types"
	"jungle-defense/pkg/utils"
)

type HealerState int

const (
	HealerIdle HealerState = iota
	HealerSeeking
	HealerMoving
	HealerHealing
)

func (s HealerState) String() string {
	switch s {
	case HealerSeeking:
		return "seeking"
	case HealerMoving:
		return "moving"
	case HealerHealing:
		return "healing"
	default:
		return "idle"
	}
}

// Healer walks to wounded defenders and patches them up, one visit at a time.
// It never picks itself or the patient it has just left.
type Healer struct {
	entity.Base
	stats defs.HealerStats

	state    HealerState
	idle     float64
	target   types.EntityID
	previous types.EntityID
	dealt    float64
}

func (h *Healer) OnReady() {
	h.Base.OnReady()
	h.rest()
}

func (h *Healer) State() HealerState { return h.state }

// Target is the current patient, 0 while none is chosen.
func (h *Healer) Target() types.EntityID { return h.target }

func (h *Healer) Update(dt float64) {
	switch h.state {
	case HealerIdle:
		h.idle -= dt
		if h.idle < 0 {
			h.state = HealerSeeking
		}
	case HealerSeeking:
		h.seek()
	case HealerMoving:
		patient, ok := h.patient()
		if !ok {
			h.state = HealerSeeking
			break
		}
		if h.moveTo(patient.Core()) {
			h.state = HealerHealing
		}
	case HealerHealing:
		patient, ok := h.patient()
		if !ok {
			h.state = HealerSeeking
			break
		}
		h.heal(patient.Core())
	}
	h.Base.Update(dt)
}

func (h *Healer) rest() {
	h.Velocity.X, h.Velocity.Y = 0, 0
	h.target = 0
	h.dealt = 0
	h.idle = h.stats.IdleSeconds + h.World().Rand().Float64()*h.stats.IdleJitter
	h.state = HealerIdle
}

func (h *Healer) seek() {
	var candidates []entity.Entity
	h.World().Each(func(e entity.Entity) bool {
		b := e.Core()
		if b.Group == types.GroupDefender && b.ID() != h.ID() && b.ID() != h.previous && b.Health.Wounded() {
			candidates = append(candidates, e)
		}
		return true
	})
	if len(candidates) == 0 {
		// Allow the previous patient again on the next round.
		h.previous = 0
		h.rest()
		return
	}
	pick := candidates[h.World().Rand().Intn(len(candidates))]
	h.target = pick.Core().ID()
	h.dealt = 0
	h.state = HealerMoving
}

func (h *Healer) patient() (entity.Entity, bool) {
	if h.target == 0 {
		return nil, false
	}
	e, ok := h.World().Get(h.target)
	if !ok {
		h.target = 0
		h.Velocity.X, h.Velocity.Y = 0, 0
	}
	return e, ok
}

// moveTo steers toward the patient one axis at a time and reports arrival.
func (h *Healer) moveTo(p *entity.Base) bool {
	tol := h.stats.Tolerance
	h.Velocity.X = utils.StepToward(p.Position.X-h.Position.X, h.stats.Speed, tol)
	h.Velocity.Y = utils.StepToward(p.Position.Y-h.Position.Y, h.stats.Speed, tol)
	switch {
	case h.Velocity.X > 0:
		h.Animation.SetFrame(0)
	case h.Velocity.X < 0:
		h.Animation.SetFrame(1)
	}
	return h.Velocity.X == 0 && h.Velocity.Y == 0
}

func (h *Healer) heal(p *entity.Base) {
	applied := p.Heal(h.stats.HealPerTick, h.stats.Overload)
	h.dealt += applied
	if applied == 0 || h.dealt >= h.stats.BudgetPerVisit || p.Health.Value >= p.Health.Max+h.stats.Overload {
		h.previous = h.target
		h.target = 0
		h.dealt = 0
		h.state = HealerSeeking
	}
}
