package gamemath

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestNormalizeInputDiagonal(t *testing.T) {
	diag := NormalizeInput(1, 1)
	axis := NormalizeInput(1, 0)

	if !near(diag.X, axis.X*math.Sin(math.Pi/4)) || !near(diag.Y, axis.X*math.Sin(math.Pi/4)) {
		t.Fatalf("diagonal input = %+v, want each axis scaled by sin(pi/4)", diag)
	}
	if !near(math.Hypot(diag.X, diag.Y), math.Hypot(axis.X, axis.Y)) {
		t.Errorf("diagonal magnitude %v differs from axis magnitude %v",
			math.Hypot(diag.X, diag.Y), math.Hypot(axis.X, axis.Y))
	}
}

func TestNormalizeInputSingleAxis(t *testing.T) {
	v := NormalizeInput(0, -1)
	if v.X != 0 || v.Y != -1 {
		t.Errorf("NormalizeInput(0,-1)=%+v, want (0,-1)", v)
	}
}

func TestNormalizeInputAnalog(t *testing.T) {
	cases := []struct {
		name   string
		mx, my float64
		wantX  float64
		wantY  float64
	}{
		{"full tilt diagonal stick", Diagonal, Diagonal, Diagonal, Diagonal},
		{"half tilt axis", 0.5, 0, 0.5, 0},
		{"partial diagonal", 0.3, -0.4, 0.3, -0.4},
		{"overshooting stick", 0.9, 0.9, Diagonal, Diagonal},
		{"mixed digital and stick", 1, 0.5, 2 / math.Sqrt(5), 1 / math.Sqrt(5)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := NormalizeInput(c.mx, c.my)
			if !near(v.X, c.wantX) || !near(v.Y, c.wantY) {
				t.Errorf("NormalizeInput(%v,%v)=%+v, want (%v,%v)", c.mx, c.my, v, c.wantX, c.wantY)
			}
		})
	}
}

func TestIntegrateAtRestWithoutInput(t *testing.T) {
	pos := dmath.NewVec2(5, 5)
	nextPos, nextVel := Integrate(pos, dmath.Vec2{}, dmath.Vec2{}, -4, 1.0/60)
	if nextPos != pos {
		t.Errorf("position drifted to %+v", nextPos)
	}
	if nextVel != (dmath.Vec2{}) {
		t.Errorf("velocity became %+v", nextVel)
	}
}

func TestIntegrateFrictionSlowsDown(t *testing.T) {
	vel := dmath.NewVec2(2, 0)
	_, nextVel := Integrate(dmath.Vec2{}, vel, dmath.Vec2{}, -4, 0.1)
	if !(nextVel.X < vel.X && nextVel.X > 0) {
		t.Errorf("friction should reduce speed toward zero, got %v", nextVel.X)
	}
}

func TestIntegrateConstantAcceleration(t *testing.T) {
	accel := dmath.NewVec2(10, 0)
	pos, vel := Integrate(dmath.Vec2{}, dmath.Vec2{}, accel, 0, 0.5)
	if !near(vel.X, 5) {
		t.Errorf("vel.X=%v, want 5", vel.X)
	}
	if !near(pos.X, 1.25) {
		t.Errorf("pos.X=%v, want 1.25", pos.X)
	}
}

func TestClamp(t *testing.T) {
	if ClampFloat(-1, 0, 3) != 0 || ClampFloat(4, 0, 3) != 3 || ClampFloat(2, 0, 3) != 2 {
		t.Error("ClampFloat out of range")
	}
	if ClampInt(-1, 0, 3) != 0 || ClampInt(4, 0, 3) != 3 || ClampInt(2, 0, 3) != 2 {
		t.Error("ClampInt out of range")
	}
}
