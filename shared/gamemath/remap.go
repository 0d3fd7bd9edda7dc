package gamemath

// Rerange linearly maps value from [srcLo, srcHi] onto [dstLo, dstHi].
// srcLo must differ from srcHi.
func Rerange(value, srcLo, srcHi, dstLo, dstHi float64) float64 {
	return (value-srcLo)*(dstHi-dstLo)/(srcHi-srcLo) + dstLo
}

// Translate returns the row-major linear index of (x, y) in a grid of the
// given width. Callers are responsible for bounds; see grid.World.Lookup.
func Translate(x, y, width int) int {
	return y*width + x
}

// ScreenToNDC converts a pixel position on a screen of the given size to
// normalized device coordinates. Pixel y grows downward, NDC y grows upward.
func ScreenToNDC(px, py, screenWidth, screenHeight float64) (x, y float64) {
	x = Rerange(px, 0, screenWidth, -1, 1)
	y = -Rerange(py, 0, screenHeight, -1, 1)
	return x, y
}

// NDCToScreen is the inverse of ScreenToNDC.
func NDCToScreen(x, y, screenWidth, screenHeight float64) (px, py float64) {
	px = Rerange(x, -1, 1, 0, screenWidth)
	py = Rerange(-y, -1, 1, 0, screenHeight)
	return px, py
}

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}
