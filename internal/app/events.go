package app

import (
	"go.uber.org/zap"

	"jungle-defense/internal/event"
)

// gameEventListener keeps the HUD counters and logs session milestones.
type gameEventListener struct {
	game *Game
}

func (l *gameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.AttackerKilled:
		data := e.Data.(event.AttackerKilledData)
		g.kills[data.Kind]++
	case event.DefenderPlaced:
		data := e.Data.(event.DefenderData)
		g.log.Debug("defender placed",
			zap.String("kind", data.Kind), zap.Int("col", data.Cell.Col), zap.Int("row", data.Cell.Row))
	case event.DefenderRemoved:
		data := e.Data.(event.DefenderData)
		g.log.Debug("defender removed", zap.String("kind", data.Kind), zap.Uint64("id", uint64(data.ID)))
	case event.GameOver:
		g.log.Info("game over",
			zap.Int("score", g.Score()),
			zap.Int("waves", g.Waves()),
			zap.Int("kills", g.TotalKills()),
			zap.Uint64("ticks", g.Ticks()))
	}
}
