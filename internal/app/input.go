package app

import (
	"jungle-defense/internal/component"
	"jungle-defense/pkg/grid"
)

func (g *Game) EditMode() component.EditMode { return g.mode }

func (g *Game) SetEditMode(m component.EditMode) { g.mode = m }

// Select picks the placeable at index in toolbar order and switches to place mode.
func (g *Game) Select(index int) bool {
	if index < 0 || index >= len(g.lib.Placeables) {
		return false
	}
	g.selected = index
	g.mode = component.EditPlace
	return true
}

func (g *Game) Selected() int { return g.selected }

// SelectedKind is the defender id placed by Apply.
func (g *Game) SelectedKind() string {
	if len(g.lib.Placeables) == 0 {
		return ""
	}
	return g.lib.Placeables[g.selected]
}

// Point records the pointer position in world units.
func (g *Game) Point(x, y float64) {
	g.pointer = grid.CellOf(x, y)
	g.pointerSet = x >= 0 && y >= 0
}

// Pointer is the targeted cell and whether it lies on the field.
func (g *Game) Pointer() (grid.Cell, bool) {
	return g.pointer, g.pointerSet && g.onField(g.pointer)
}

// Apply performs the current edit mode at the pointer cell.
func (g *Game) Apply() bool {
	cell, ok := g.Pointer()
	if !ok {
		return false
	}
	switch g.mode {
	case component.EditPlace:
		return g.PlaceDefender(g.SelectedKind(), cell)
	case component.EditRemove:
		return g.RemoveDefenders(cell)
	}
	return false
}

// Cancel returns to idle mode.
func (g *Game) Cancel() { g.mode = component.EditIdle }

func (g *Game) onField(cell grid.Cell) bool {
	return cell.InBounds(g.cfg.Field.Cols, g.cfg.Field.Rows)
}
