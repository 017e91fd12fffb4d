// internal/app/placement.go
package app

import (
	"go.uber.org/zap"

	"jungle-defense/internal/event"
	"jungle-defense/internal/types"
	"jungle-defense/internal/unit"
	"jungle-defense/pkg/grid"
)

// PlaceDefender buys a defender of kind and puts it on cell. It is refused
// for cells off the field, cells that already hold a defender, unknown kinds
// and when the player cannot pay; a refusal changes nothing.
func (g *Game) PlaceDefender(kind string, cell grid.Cell) bool {
	if g.world.GameOver() {
		return false
	}
	def, ok := g.lib.Defenders[kind]
	if !ok {
		g.log.Debug("placement refused: unknown kind", zap.String("kind", kind))
		return false
	}
	if !g.onField(cell) {
		g.log.Debug("placement refused: off field", zap.Int("col", cell.Col), zap.Int("row", cell.Row))
		return false
	}
	if g.world.HasAnyInCell(cell, types.GroupDefender) {
		g.log.Debug("placement refused: occupied", zap.Int("col", cell.Col), zap.Int("row", cell.Row))
		return false
	}
	if g.world.Bananas() < def.Price {
		g.log.Debug("placement refused: not enough bananas",
			zap.String("kind", kind), zap.Int("price", def.Price), zap.Int("bananas", g.world.Bananas()))
		return false
	}

	e, err := unit.NewDefender(g.lib, def, cell)
	if err != nil {
		g.log.Error("build defender", zap.Error(err))
		return false
	}
	g.world.SpendBananas(def.Price)
	id := g.world.Create(e)
	g.events.Dispatch(event.Event{
		Type: event.DefenderPlaced,
		Data: event.DefenderData{ID: id, Kind: kind, Cell: cell},
	})
	return true
}

// RemoveDefenders destroys every defender on cell and reports whether any was there.
// Nothing is refunded.
func (g *Game) RemoveDefenders(cell grid.Cell) bool {
	victims := g.world.QueryCell(cell, types.GroupDefender)
	for _, v := range victims {
		b := v.Core()
		g.world.Destroy(b.ID())
		g.events.Dispatch(event.Event{
			Type: event.DefenderRemoved,
			Data: event.DefenderData{ID: b.ID(), Kind: b.DefID, Cell: cell},
		})
	}
	return len(victims) > 0
}
