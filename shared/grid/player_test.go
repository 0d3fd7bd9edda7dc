package grid

import (
	"math"
	"math/rand"
	"testing"
)

var testSprites = DirectionSprites{Up: 8, Down: 9, Left: 10, Right: 11}

func TestDiscreteNeverNegative(t *testing.T) {
	p := NewPlayer(0, 0, testSprites)
	b := Bounds{MaxX: 9, MaxY: 9}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p.Step(Direction(rng.Intn(4)), b, nil)
		if p.Pos.X < 0 || p.Pos.Y < 0 {
			t.Fatalf("step %d: position (%v,%v) went negative", i, p.Pos.X, p.Pos.Y)
		}
	}
}

func TestDiscreteStepsOneCell(t *testing.T) {
	p := NewPlayer(3, 3, testSprites)
	b := Bounds{MaxX: 9, MaxY: 9}
	cases := []struct {
		move       func(Bounds) bool
		wantX      float64
		wantY      float64
		wantFacing Direction
	}{
		{p.Up, 3, 4, Up},
		{p.Right, 4, 4, Right},
		{p.Down, 4, 3, Down},
		{p.Left, 3, 3, Left},
	}
	for i, c := range cases {
		if !c.move(b) {
			t.Fatalf("move %d did not move", i)
		}
		if p.Pos.X != c.wantX || p.Pos.Y != c.wantY || p.Facing != c.wantFacing {
			t.Errorf("move %d: at (%v,%v) facing %v, want (%v,%v) facing %v",
				i, p.Pos.X, p.Pos.Y, p.Facing, c.wantX, c.wantY, c.wantFacing)
		}
	}
}

func TestDiscreteRightFiveTimesPanView(t *testing.T) {
	w, _ := NewWorld(10, 10, constant(1))
	v, err := NewView(w, 0, 0, 5, 5, PanPolicy{})
	if err != nil {
		t.Fatal(err)
	}
	p := NewPlayer(0, 0, testSprites)
	model := Discrete{}
	for i := 0; i < 5; i++ {
		model.Move(p, Intent{Steps: []Direction{Right}}, 1.0/60, v.Policy.Confine(v), nil)
		v.Policy.Track(v, p.Pos.X, p.Pos.Y)
	}
	v.TrackPlayer(p.Pos.X, p.Pos.Y, 1)
	if p.Pos.X != 4 {
		t.Errorf("player.x=%v, want 4", p.Pos.X)
	}
	if v.X+v.Width > 10 {
		t.Errorf("view.x+width=%d exceeds world width", v.X+v.Width)
	}
}

func TestDiscreteRightFiveTimesFollowView(t *testing.T) {
	w, _ := NewWorld(10, 10, constant(1))
	v, _ := NewView(w, 0, 0, 5, 5, FollowPolicy{MaxStep: 1})
	p := NewPlayer(0, 0, testSprites)
	for i := 0; i < 5; i++ {
		Discrete{}.Move(p, Intent{Steps: []Direction{Right}}, 0, v.Policy.Confine(v), nil)
		v.Policy.Track(v, p.Pos.X, p.Pos.Y)
	}
	if p.Pos.X != 5 || v.X != 1 {
		t.Errorf("player.x=%v view.x=%d, want 5 and 1", p.Pos.X, v.X)
	}
	if v.X+v.Width > 10 {
		t.Errorf("view overran the world")
	}
}

func TestStepBlocked(t *testing.T) {
	p := NewPlayer(2, 2, testSprites)
	wall := func(fromX, fromY, dx, dy float64) bool { return fromX+dx == 3 }
	if p.Step(Right, Bounds{MaxX: 9, MaxY: 9}, wall) {
		t.Fatal("step into a blocked cell should fail")
	}
	if p.Pos.X != 2 || p.Facing != Right {
		t.Errorf("blocked step: at %v facing %v, want 2 facing right", p.Pos.X, p.Facing)
	}
}

func TestKinematicNoDriftAtRest(t *testing.T) {
	p := NewPlayer(5, 5, testSprites)
	Kinematic{Acceleration: 40, Friction: -6}.Move(p, Intent{}, 1.0/60, Bounds{MaxX: 9, MaxY: 9}, nil)
	if p.Pos.X != 5 || p.Pos.Y != 5 {
		t.Errorf("position drifted to (%v,%v)", p.Pos.X, p.Pos.Y)
	}
}

func TestKinematicDiagonalMagnitude(t *testing.T) {
	model := Kinematic{Acceleration: 40, Friction: -6}
	b := Bounds{MaxX: 99, MaxY: 99}

	axis := NewPlayer(50, 50, testSprites)
	model.Move(axis, Intent{AxisX: 1}, 0.1, b, nil)
	diag := NewPlayer(50, 50, testSprites)
	model.Move(diag, Intent{AxisX: 1, AxisY: 1}, 0.1, b, nil)

	axisDist := math.Hypot(axis.Pos.X-50, axis.Pos.Y-50)
	diagDist := math.Hypot(diag.Pos.X-50, diag.Pos.Y-50)
	if math.Abs(axisDist-diagDist) > 1e-9 {
		t.Errorf("diagonal moved %v, axis moved %v", diagDist, axisDist)
	}
	wantComponent := (axis.Pos.X - 50) * math.Sin(math.Pi/4)
	if math.Abs(diag.Pos.X-50-wantComponent) > 1e-9 {
		t.Errorf("diagonal x component %v, want %v", diag.Pos.X-50, wantComponent)
	}
}

func TestKinematicStickDiagonalMatchesAxis(t *testing.T) {
	model := Kinematic{Acceleration: 40, Friction: -6}
	b := Bounds{MaxX: 99, MaxY: 99}
	tilt := math.Sqrt(0.5)

	axis := NewPlayer(50, 50, testSprites)
	diag := NewPlayer(50, 50, testSprites)
	for i := 0; i < 30; i++ {
		model.Move(axis, Intent{AxisX: 1}, 1.0/60, b, nil)
		model.Move(diag, Intent{AxisX: tilt, AxisY: tilt}, 1.0/60, b, nil)
	}

	axisDist := math.Hypot(axis.Pos.X-50, axis.Pos.Y-50)
	diagDist := math.Hypot(diag.Pos.X-50, diag.Pos.Y-50)
	if math.Abs(axisDist-diagDist) > 1e-9 {
		t.Errorf("full tilt diagonal stick moved %v, axis stick moved %v", diagDist, axisDist)
	}

	half := NewPlayer(50, 50, testSprites)
	for i := 0; i < 30; i++ {
		model.Move(half, Intent{AxisX: 0.5}, 1.0/60, b, nil)
	}
	if d := half.Pos.X - 50; math.Abs(d-axisDist/2) > 1e-9 {
		t.Errorf("half tilt moved %v, want %v", d, axisDist/2)
	}
}

func TestKinematicClampsBothBounds(t *testing.T) {
	model := Kinematic{Acceleration: 40, Friction: -1}
	b := Bounds{MaxX: 9, MaxY: 9}

	low := NewPlayer(0.01, 5, testSprites)
	low.Vel.X = -10
	model.Move(low, Intent{AxisX: -1}, 0.1, b, nil)
	if low.Pos.X != 0 || low.Vel.X != 0 {
		t.Errorf("lower bound: pos %v vel %v, want 0 and 0", low.Pos.X, low.Vel.X)
	}

	high := NewPlayer(8.99, 5, testSprites)
	high.Vel.X = 10
	model.Move(high, Intent{AxisX: 1}, 0.1, b, nil)
	if high.Pos.X != 9 || high.Vel.X != 0 {
		t.Errorf("upper bound: pos %v vel %v, want 9 and 0", high.Pos.X, high.Vel.X)
	}
}

func TestKinematicBlockedAxis(t *testing.T) {
	p := NewPlayer(2, 2, testSprites)
	blockX := func(_, _, dx, _ float64) bool { return dx != 0 }
	Kinematic{Acceleration: 40, Friction: -6}.Move(p, Intent{AxisX: 1, AxisY: 1}, 0.1, Bounds{MaxX: 9, MaxY: 9}, blockX)
	if p.Pos.X != 2 || p.Vel.X != 0 {
		t.Errorf("x should be blocked, got pos %v vel %v", p.Pos.X, p.Vel.X)
	}
	if p.Pos.Y <= 2 {
		t.Errorf("y should still advance, got %v", p.Pos.Y)
	}
}

func TestFace(t *testing.T) {
	cases := []struct {
		mx, my float64
		start  Direction
		want   Direction
	}{
		{0, 0, Left, Left},
		{0, 1, Down, Up},
		{0, -1, Up, Down},
		{1, 0, Up, Right},
		{-1, 0, Up, Left},
		{1, 1, Down, Right},
		{-0.5, 1, Down, Up},
	}
	for _, c := range cases {
		p := NewPlayer(0, 0, testSprites)
		p.Facing = c.start
		p.Face(c.mx, c.my)
		if p.Facing != c.want {
			t.Errorf("Face(%v,%v) from %v = %v, want %v", c.mx, c.my, c.start, p.Facing, c.want)
		}
	}
}

func TestSpriteFollowsFacing(t *testing.T) {
	p := NewPlayer(0, 0, testSprites)
	if p.Sprite() != 9 {
		t.Errorf("initial sprite %d, want down sprite 9", p.Sprite())
	}
	p.Facing = Left
	if p.Sprite() != 10 {
		t.Errorf("left sprite %d, want 10", p.Sprite())
	}
}

func TestModelByName(t *testing.T) {
	m, err := ModelByName("kinematic", 40, -6)
	if err != nil {
		t.Fatal(err)
	}
	if k := m.(Kinematic); k.Acceleration != 40 || k.Friction != -6 {
		t.Errorf("ModelByName(kinematic) = %#v", m)
	}
	if _, err := ModelByName("teleport", 0, 0); err == nil {
		t.Error("unknown model should fail")
	}
}
