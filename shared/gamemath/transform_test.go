package gamemath

import "testing"

func TestCellTransformTilesPlayfield(t *testing.T) {
	p := Playfield{ViewWidth: 5, ViewHeight: 4, UIShim: 0.1}

	// The first and last cells touch the playfield edges.
	m := p.CellTransform(0, 0)
	left, bottom := m.Apply(-1, -1)
	if !near(left, -1) || !near(bottom, -0.9) {
		t.Errorf("cell (0,0) lower-left = (%v,%v), want (-1,-0.9)", left, bottom)
	}
	m = p.CellTransform(4, 3)
	right, top := m.Apply(1, 1)
	if !near(right, 1) || !near(top, 1) {
		t.Errorf("cell (4,3) upper-right = (%v,%v), want (1,1)", right, top)
	}

	// Neighbouring cells share an edge.
	a := p.CellTransform(1, 1)
	b := p.CellTransform(2, 1)
	ar, _ := a.Apply(1, 0)
	bl, _ := b.Apply(-1, 0)
	if !near(ar, bl) {
		t.Errorf("cells 1 and 2 do not abut: %v vs %v", ar, bl)
	}
}

func TestCellTransformFractional(t *testing.T) {
	p := Playfield{ViewWidth: 5, ViewHeight: 5}
	a, _ := p.CellTransform(1, 0).Apply(0, 0)
	b, _ := p.CellTransform(2, 0).Apply(0, 0)
	mid, _ := p.CellTransform(1.5, 0).Apply(0, 0)
	if !near(mid, (a+b)/2) {
		t.Errorf("half-way position centre %v, want %v", mid, (a+b)/2)
	}
}

func TestQuadGeoMMapsCorners(t *testing.T) {
	// Full-screen quad: identity transform.
	g := QuadGeoM(ScaleTranslate(1, 1, 0, 0), 16, 16, 640, 480)

	x, y := g.Apply(0, 0)
	if !near(x, 0) || !near(y, 0) {
		t.Errorf("image top-left -> (%v,%v), want (0,0)", x, y)
	}
	x, y = g.Apply(16, 16)
	if !near(x, 640) || !near(y, 480) {
		t.Errorf("image bottom-right -> (%v,%v), want (640,480)", x, y)
	}
}

func TestQuadGeoMCell(t *testing.T) {
	p := Playfield{ViewWidth: 2, ViewHeight: 2}
	g := QuadGeoM(p.CellTransform(1, 1), 16, 16, 200, 100)

	// Cell (1,1) is the top-right quarter of the screen.
	x, y := g.Apply(0, 0)
	if !near(x, 100) || !near(y, 0) {
		t.Errorf("top-left -> (%v,%v), want (100,0)", x, y)
	}
	x, y = g.Apply(16, 16)
	if !near(x, 200) || !near(y, 50) {
		t.Errorf("bottom-right -> (%v,%v), want (200,50)", x, y)
	}
}
