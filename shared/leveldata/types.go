// Package leveldata builds world layouts, either from the built-in tile
// pattern or from a TMX file. It has no dependencies on ebitengine, donburi,
// or resolv; pure data only.
package leveldata

import "math"

// Layout is everything needed to construct a world: the tile grid, where the
// player starts and the static entities placed on it. Cells are row-major
// with y growing upward.
type Layout struct {
	Name     string
	Width    int
	Height   int
	Cells    []uint32
	Spawn    Cell
	Entities []EntitySpawn
}

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// EntitySpawn places a static entity at a world position in cells, which
// need not be whole. Solid entities block movement in the cell they start in.
type EntitySpawn struct {
	Name  string
	X, Y  float64
	TexID uint32
	Solid bool
}

// Cell returns the grid cell holding the entity's lower-left corner.
func (e EntitySpawn) Cell() Cell {
	return Cell{X: int(math.Floor(e.X)), Y: int(math.Floor(e.Y))}
}

// At returns the tile id at (x, y). The cell must be in range.
func (l *Layout) At(x, y int) uint32 {
	return l.Cells[y*l.Width+x]
}
