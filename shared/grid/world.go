// Package grid holds the tile world, the view over it and the player that
// moves through it. Nothing here depends on rendering.
package grid

import (
	"errors"
	"fmt"

	"github.com/automoto/tilepaste/shared/gamemath"
)

var (
	// ErrDegenerate is returned for worlds or views smaller than 2x2.
	ErrDegenerate = errors.New("grid: dimensions must be at least 2x2")
	// ErrViewTooLarge is returned when a view does not fit inside its world.
	ErrViewTooLarge = errors.New("grid: view larger than world")
)

// World is a fixed-size row-major grid of tile ids.
type World struct {
	Width  int
	Height int
	cells  []uint32
}

// NewWorld creates a width x height world, seeding every cell with seed(x, y).
func NewWorld(width, height int, seed func(x, y int) uint32) (*World, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("world %dx%d: %w", width, height, ErrDegenerate)
	}
	w := &World{
		Width:  width,
		Height: height,
		cells:  make([]uint32, width*height),
	}
	for i := range w.cells {
		w.cells[i] = seed(i%width, i/width)
	}
	return w, nil
}

// InBounds reports whether (x, y) names a cell of the world.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// Lookup returns the tile id at (x, y). ok is false when no such cell exists.
func (w *World) Lookup(x, y int) (id uint32, ok bool) {
	if !w.InBounds(x, y) {
		return 0, false
	}
	return w.cells[gamemath.Translate(x, y, w.Width)], true
}

// LookupOr returns the tile id at (x, y), or fallback when out of bounds.
func (w *World) LookupOr(x, y int, fallback uint32) uint32 {
	if id, ok := w.Lookup(x, y); ok {
		return id
	}
	return fallback
}

// Set rewrites the cell at (x, y) and reports whether it exists.
func (w *World) Set(x, y int, id uint32) bool {
	if !w.InBounds(x, y) {
		return false
	}
	w.cells[gamemath.Translate(x, y, w.Width)] = id
	return true
}
