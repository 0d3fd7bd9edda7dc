package gamemath

import "github.com/hajimehoshi/ebiten/v2"

// Mat4 is a 4x4 affine transform laid out row-major with the translation in
// the last row, matching the column-vector convention used by the renderer.
type Mat4 [4][4]float32

// ScaleTranslate builds a transform that scales by (sx, sy) and then moves by
// (tx, ty).
func ScaleTranslate(sx, sy, tx, ty float64) Mat4 {
	return Mat4{
		{float32(sx), 0, 0, 0},
		{0, float32(sy), 0, 0},
		{0, 0, 1, 0},
		{float32(tx), float32(ty), 0, 1},
	}
}

// Apply transforms the 2D point (x, y).
func (m Mat4) Apply(x, y float64) (float64, float64) {
	ox := float64(m[0][0])*x + float64(m[1][0])*y + float64(m[3][0])
	oy := float64(m[0][1])*x + float64(m[1][1])*y + float64(m[3][1])
	return ox, oy
}

// Playfield is the NDC region tiles are laid out in. The bottom UIShim of
// vertical NDC space is left to the HUD.
type Playfield struct {
	ViewWidth  int
	ViewHeight int
	UIShim     float64
}

// CellTransform maps the unit quad [-1,1]^2 onto the playfield slot of the
// view-local position (localX, localY). Integer positions land exactly on a
// grid cell, fractional positions fall between cells. View dimensions must be
// at least 2.
func (p Playfield) CellTransform(localX, localY float64) Mat4 {
	bottom := -1 + p.UIShim
	sx := 1 / float64(p.ViewWidth)
	sy := (1 - bottom) / 2 / float64(p.ViewHeight)

	tx := Rerange(localX, 0, float64(p.ViewWidth-1), -1+sx, 1-sx)
	ty := Rerange(localY, 0, float64(p.ViewHeight-1), bottom+sy, 1-sy)
	return ScaleTranslate(sx, sy, tx, ty)
}

// QuadGeoM returns the ebiten geometry that draws an image of size
// (imgW, imgH) pixels through the NDC transform m onto a screen of size
// (screenW, screenH) pixels.
func QuadGeoM(m Mat4, imgW, imgH, screenW, screenH float64) ebiten.GeoM {
	var g ebiten.GeoM

	// image pixels -> unit quad, flipping y so the image top sits at +1
	g.Scale(2/imgW, -2/imgH)
	g.Translate(-1, 1)

	var model ebiten.GeoM
	model.SetElement(0, 0, float64(m[0][0]))
	model.SetElement(0, 1, float64(m[1][0]))
	model.SetElement(0, 2, float64(m[3][0]))
	model.SetElement(1, 0, float64(m[0][1]))
	model.SetElement(1, 1, float64(m[1][1]))
	model.SetElement(1, 2, float64(m[3][1]))
	g.Concat(model)

	// NDC -> screen pixels
	g.Scale(screenW/2, -screenH/2)
	g.Translate(screenW/2, screenH/2)
	return g
}
