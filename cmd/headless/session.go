// cmd/headless/session.go
package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"jungle-defense/internal/app"
	"jungle-defense/internal/config"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/event"
	"jungle-defense/internal/scheduler"
)

type result struct {
	Seed   int64
	Ticks  uint64
	Score  int
	Waves  int
	Kills  int
	Placed int
	Over   bool
}

// waveLogger reports wave transitions of one session.
type waveLogger struct {
	log *zap.Logger
}

func (l waveLogger) OnEvent(e event.Event) {
	if d, ok := e.Data.(event.WaveData); ok {
		l.log.Debug("wave", zap.Int("waves", d.Waves), zap.Int("chance", d.Chance))
	}
}

// runSession plays one seeded session until game over, maxTicks or ctx end.
// frame == 0 runs unpaced.
func runSession(ctx context.Context, cfg *config.Config, lib *defs.Library, plan []placement, frame time.Duration, maxTicks uint64, log *zap.Logger) (result, error) {
	g := app.NewGame(cfg, lib, nil, log)
	g.Events().Subscribe(event.WaveAdvanced, waveLogger{log: log})

	placed := 0
	for _, p := range plan {
		if g.PlaceDefender(p.Kind, p.Cell) {
			placed++
		} else {
			log.Warn("scripted placement refused", zap.String("kind", p.Kind), zap.Int("col", p.Cell.Col), zap.Int("row", p.Cell.Row))
		}
	}

	loop := scheduler.NewFixedStep(frame, nil)
	err := loop.Run(ctx, func() bool {
		g.Tick()
		return !g.GameOver() && (maxTicks == 0 || g.Ticks() < maxTicks)
	})
	return result{
		Seed:   cfg.Session.Seed,
		Ticks:  g.Ticks(),
		Score:  g.Score(),
		Waves:  g.Waves(),
		Kills:  g.TotalKills(),
		Placed: placed,
		Over:   g.GameOver(),
	}, err
}
