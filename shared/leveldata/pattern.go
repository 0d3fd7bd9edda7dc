package leveldata

import "fmt"

// Pattern seeds a world with the default tile layout: a border id on every
// row and column that is a multiple of Period, and alternating Even/Odd ids
// by row everywhere else.
type Pattern struct {
	Period uint32
	Border uint32
	Even   uint32
	Odd    uint32
}

// At returns the tile id for (x, y).
func (p Pattern) At(x, y int) uint32 {
	if p.Period > 0 && (uint32(x)%p.Period == 0 || uint32(y)%p.Period == 0) {
		return p.Border
	}
	if y%2 == 0 {
		return p.Even
	}
	return p.Odd
}

// Generate lays the pattern over a width x height world with the player in
// spawn and the given entities.
func Generate(width, height int, p Pattern, spawn Cell, entities []EntitySpawn) (*Layout, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("generate %dx%d: empty layout", width, height)
	}
	l := &Layout{
		Name:     "generated",
		Width:    width,
		Height:   height,
		Cells:    make([]uint32, width*height),
		Spawn:    spawn,
		Entities: entities,
	}
	for i := range l.Cells {
		l.Cells[i] = p.At(i%width, i/width)
	}
	return l, nil
}
