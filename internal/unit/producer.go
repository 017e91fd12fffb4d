// internal/unit/producer.go
package unit

import (
	"jungle-defense/internal/component"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/entity"
)

// Producer adds bananas every Delay seconds. With RequiresNeighbor set it only
// works, and only animates, while such a neighbor stands next to it.
type Producer struct {
	entity.Base
	stats      defs.ProducerStats
	production component.Cooldown
	produced   int
}

func (p *Producer) Update(dt float64) {
	working := p.Working()
	p.Animation.Paused = !working
	if working && p.production.Advance(dt) {
		p.World().AddBananas(p.stats.Amount)
		p.produced += p.stats.Amount
		p.production.Reset()
	}
	p.Base.Update(dt)
}

// Working reports whether the adjacency requirement is met.
func (p *Producer) Working() bool {
	if p.stats.RequiresNeighbor == "" {
		return true
	}
	return p.World().HasKindInNeighborhood(p.Cell(), p.stats.RequiresNeighbor)
}

func (p *Producer) Produced() int { return p.produced }
