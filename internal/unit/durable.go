// internal/unit/durable.go
package unit

import (
	"jungle-defense/internal/defs"
	"jungle-defense/internal/entity"
)

type Condition int

const (
	Healthy Condition = iota
	Damaged
	Critical
)

func (c Condition) String() string {
	switch c {
	case Damaged:
		return "damaged"
	case Critical:
		return "critical"
	default:
		return "healthy"
	}
}

// Durable soaks damage. Its condition, shown as the sprite frame, steps down
// at two health fractions.
type Durable struct {
	entity.Base
	stats defs.DurableStats
}

func (d *Durable) Condition() Condition {
	f := d.Health.Fraction()
	switch {
	case f <= d.stats.CriticalAt:
		return Critical
	case f <= d.stats.DamagedAt:
		return Damaged
	default:
		return Healthy
	}
}

func (d *Durable) Update(dt float64) {
	d.Animation.SetFrame(int(d.Condition()))
	d.Base.Update(dt)
}
