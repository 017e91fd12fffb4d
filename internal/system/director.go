// internal/system/director.go
package system

import (
	"go.uber.org/zap"

	"jungle-defense/internal/config"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/entity"
	"jungle-defense/internal/event"
	"jungle-defense/internal/unit"
)

// Director spawns attackers. Every tick it rolls a 1-in-chance trial; the
// chance denominator only ever shrinks, once when a wave settles and again
// when the next wave starts, down to a floor.
type Director struct {
	world *entity.World
	lib   *defs.Library
	cfg   config.DirectorConfig
	log   *zap.Logger

	counter int
	chance  int
	waves   int
	settled bool
	spawned int
}

func NewDirector(world *entity.World, lib *defs.Library, log *zap.Logger) *Director {
	cfg := world.Rules().Director
	return &Director{
		world:   world,
		lib:     lib,
		cfg:     cfg,
		log:     log.Named("director"),
		counter: -cfg.GraceTicks,
		chance:  cfg.InitialChance,
	}
}

func (d *Director) Update(deltaTime float64) {
	if d.world.GameOver() {
		return
	}

	d.counter++
	switch {
	case d.counter >= d.cfg.WaveTicks:
		d.counter = 0
		d.waves++
		d.settled = false
		d.tighten(d.cfg.WaveFactor)
		d.log.Info("wave advanced", zap.Int("waves", d.waves), zap.Int("chance", d.chance))
		d.world.Events().Dispatch(event.Event{
			Type: event.WaveAdvanced,
			Data: event.WaveData{Waves: d.waves, Chance: d.chance},
		})
	case !d.settled && d.counter >= d.cfg.SettleTicks:
		d.settled = true
		d.tighten(d.cfg.SettleFactor)
		d.log.Debug("wave settled", zap.Int("waves", d.waves), zap.Int("chance", d.chance))
	}

	if d.world.Rand().Intn(d.chance) == 0 {
		d.spawn()
	}
}

// tighten shrinks the chance denominator by factor, never below the floor and
// never upward.
func (d *Director) tighten(factor float64) {
	next := int(float64(d.chance) * factor)
	if next < d.cfg.MinChance {
		next = d.cfg.MinChance
	}
	if next < d.chance {
		d.chance = next
	}
}

func (d *Director) spawn() {
	id := d.world.Rand().ChooseWeighted(d.lib.TableFor(d.waves))
	def, ok := d.lib.Attackers[id]
	if !ok {
		d.log.Error("spawn table references unknown attacker", zap.String("attacker", id))
		return
	}
	row := d.world.Rand().Intn(d.world.Rules().Field.Rows)
	d.world.Create(unit.NewAttacker(def, row))
	d.spawned++
}

// Counter is the tick counter of the current wave; negative during the grace period.
func (d *Director) Counter() int { return d.counter }

// Chance is the current spawn chance denominator.
func (d *Director) Chance() int { return d.chance }

// Waves is the number of waves passed.
func (d *Director) Waves() int { return d.waves }

func (d *Director) Settled() bool { return d.settled }

func (d *Director) Spawned() int { return d.spawned }
