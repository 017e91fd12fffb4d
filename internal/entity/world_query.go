// internal/entity/world_query.go
package entity

import (
	"math"

	"jungle-defense/internal/types"
	"jungle-defense/pkg/grid"
)

// Queries are linear scans over live entities; an empty group filter matches
// every group.

// QueryRadius returns the entities whose position is within radius of (x, y).
func (w *World) QueryRadius(x, y, radius float64, groups ...types.Group) []Entity {
	var out []Entity
	w.Each(func(e Entity) bool {
		b := e.Core()
		if !b.Group.Matches(groups) {
			return true
		}
		if math.Hypot(b.Position.X-x, b.Position.Y-y) <= radius {
			out = append(out, e)
		}
		return true
	})
	return out
}

// QueryCell returns the entities standing in cell.
func (w *World) QueryCell(cell grid.Cell, groups ...types.Group) []Entity {
	var out []Entity
	w.Each(func(e Entity) bool {
		b := e.Core()
		if b.Group.Matches(groups) && b.Cell() == cell {
			out = append(out, e)
		}
		return true
	})
	return out
}

// QueryNeighborhood returns the entities in cell and its four neighbors.
func (w *World) QueryNeighborhood(cell grid.Cell, groups ...types.Group) []Entity {
	var out []Entity
	w.Each(func(e Entity) bool {
		b := e.Core()
		if b.Group.Matches(groups) && b.Cell().Distance(cell) <= 1 {
			out = append(out, e)
		}
		return true
	})
	return out
}

// HasAnyInCell stops at the first match.
func (w *World) HasAnyInCell(cell grid.Cell, groups ...types.Group) bool {
	found := false
	w.Each(func(e Entity) bool {
		b := e.Core()
		if b.Group.Matches(groups) && b.Cell() == cell {
			found = true
		}
		return !found
	})
	return found
}

// HasKindInNeighborhood reports whether an entity with the given kind tag
// stands next to cell, not counting the cell itself.
func (w *World) HasKindInNeighborhood(cell grid.Cell, kind string) bool {
	found := false
	w.Each(func(e Entity) bool {
		b := e.Core()
		if b.Kind == kind && b.Cell().Distance(cell) == 1 {
			found = true
		}
		return !found
	})
	return found
}

// HasBlockerAheadInLane reports whether a matching entity is in cell's row at
// the same or a higher column.
func (w *World) HasBlockerAheadInLane(cell grid.Cell, groups ...types.Group) bool {
	found := false
	w.Each(func(e Entity) bool {
		b := e.Core()
		if b.Group.Matches(groups) && cell.AtOrAheadInRow(b.Cell()) {
			found = true
		}
		return !found
	})
	return found
}
