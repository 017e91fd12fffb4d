// pkg/grid/grid.go
package grid

import "jungle-defense/pkg/utils"

// Space is the edge length of one grid cell in world units.
const Space = 84

// Cell is a discrete (column, row) address on the lawn.
type Cell struct {
	Col, Row int
}

// NeighborDirections are the four axis-aligned offsets of the von Neumann neighborhood.
var NeighborDirections = []Cell{
	{Col: 0, Row: 1}, {Col: 0, Row: -1},
	{Col: 1, Row: 0}, {Col: -1, Row: 0},
}

// GridToFree converts a column or row index to the continuous coordinate of its top-left edge.
func GridToFree(g int) float64 {
	return float64(g * Space)
}

// FreeToGrid converts a continuous coordinate to a column or row index.
// The division truncates toward zero, so -10 maps to 0, not -1.
func FreeToGrid(f float64) int {
	return int(f / Space)
}

// SnapToGrid rounds a continuous coordinate through the grid and back.
func SnapToGrid(f float64) float64 {
	return GridToFree(FreeToGrid(f))
}

// CellOf returns the cell containing a continuous position.
func CellOf(x, y float64) Cell {
	return Cell{Col: FreeToGrid(x), Row: FreeToGrid(y)}
}

// Origin returns the continuous position of the cell's top-left corner.
func (c Cell) Origin() (x, y float64) {
	return GridToFree(c.Col), GridToFree(c.Row)
}

// Add returns the sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{Col: c.Col + other.Col, Row: c.Row + other.Row}
}

// Neighbors returns the four axis-aligned neighbors, without the cell itself.
func (c Cell) Neighbors() []Cell {
	out := make([]Cell, 0, len(NeighborDirections))
	for _, d := range NeighborDirections {
		out = append(out, c.Add(d))
	}
	return out
}

// Distance is the Manhattan distance between two cells.
func (c Cell) Distance(to Cell) int {
	return utils.Abs(c.Col-to.Col) + utils.Abs(c.Row-to.Row)
}

// AtOrAheadInRow reports whether other sits in the same row as c at a column >= c.Col.
func (c Cell) AtOrAheadInRow(other Cell) bool {
	return other.Row == c.Row && other.Col >= c.Col
}

// InBounds reports whether the cell lies inside a cols x rows field.
func (c Cell) InBounds(cols, rows int) bool {
	return c.Col >= 0 && c.Col < cols && c.Row >= 0 && c.Row < rows
}
