package grid

import (
	"errors"
	"testing"
)

func constant(id uint32) func(x, y int) uint32 {
	return func(int, int) uint32 { return id }
}

func TestNewWorldRejectsDegenerate(t *testing.T) {
	for _, dims := range [][2]int{{1, 5}, {5, 1}, {0, 0}} {
		if _, err := NewWorld(dims[0], dims[1], constant(1)); !errors.Is(err, ErrDegenerate) {
			t.Errorf("NewWorld(%d,%d) err=%v, want ErrDegenerate", dims[0], dims[1], err)
		}
	}
}

func TestWorldSeedAndLookup(t *testing.T) {
	w, err := NewWorld(4, 3, func(x, y int) uint32 { return uint32(y*10 + x) })
	if err != nil {
		t.Fatal(err)
	}
	if len(w.cells) != 12 {
		t.Fatalf("%d cells, want 12", len(w.cells))
	}
	id, ok := w.Lookup(3, 2)
	if !ok || id != 23 {
		t.Errorf("Lookup(3,2)=(%d,%v), want (23,true)", id, ok)
	}
}

func TestWorldLookupOutOfBounds(t *testing.T) {
	w, _ := NewWorld(4, 3, constant(1))
	cases := []struct{ x, y int }{
		{-1, 0}, {4, 0}, {0, 3}, {0, -1}, {100, 100},
	}
	for _, c := range cases {
		if _, ok := w.Lookup(c.x, c.y); ok {
			t.Errorf("Lookup(%d,%d) should report no such cell", c.x, c.y)
		}
		if got := w.LookupOr(c.x, c.y, 99); got != 99 {
			t.Errorf("LookupOr(%d,%d)=%d, want fallback 99", c.x, c.y, got)
		}
	}
}

func TestWorldSet(t *testing.T) {
	w, _ := NewWorld(3, 3, constant(1))
	if !w.Set(1, 2, 7) {
		t.Fatal("Set in bounds should succeed")
	}
	if id, _ := w.Lookup(1, 2); id != 7 {
		t.Errorf("Lookup after Set = %d, want 7", id)
	}
	if w.Set(3, 0, 7) {
		t.Error("Set out of bounds should fail")
	}
}
