package grid

import (
	"fmt"

	"github.com/automoto/tilepaste/shared/gamemath"
)

// Intent is one frame of player input. Steps are the direction presses that
// started this frame, in order; AxisX/AxisY is the held direction, each
// within [-1, 1].
type Intent struct {
	Steps []Direction
	AxisX float64
	AxisY float64
}

// MovementModel turns an Intent into player motion.
type MovementModel interface {
	Move(p *Player, in Intent, dt float64, b Bounds, blocked BlockFunc)
	Name() string
}

// Discrete moves exactly one cell per press and has no notion of time.
type Discrete struct{}

func (Discrete) Move(p *Player, in Intent, _ float64, b Bounds, blocked BlockFunc) {
	for _, d := range in.Steps {
		p.Step(d, b, blocked)
	}
}

func (Discrete) Name() string { return "discrete" }

// Kinematic integrates held input as acceleration against velocity-
// proportional friction. Friction is negative.
type Kinematic struct {
	Acceleration float64
	Friction     float64
}

func (k Kinematic) Move(p *Player, in Intent, dt float64, b Bounds, blocked BlockFunc) {
	p.Face(in.AxisX, in.AxisY)

	accel := gamemath.NormalizeInput(in.AxisX, in.AxisY).MulScalar(k.Acceleration)
	pos, vel := gamemath.Integrate(p.Pos, p.Vel, accel, k.Friction, dt)

	if blocked != nil {
		if dx := pos.X - p.Pos.X; dx != 0 && blocked(p.Pos.X, p.Pos.Y, dx, 0) {
			pos.X = p.Pos.X
			vel.X = 0
		}
		if dy := pos.Y - p.Pos.Y; dy != 0 && blocked(pos.X, p.Pos.Y, 0, dy) {
			pos.Y = p.Pos.Y
			vel.Y = 0
		}
	}

	p.Pos = pos
	p.Vel = vel
	p.ClampTo(b)
}

func (Kinematic) Name() string { return "kinematic" }

// ModelByName returns the movement model registered under name.
func ModelByName(name string, acceleration, friction float64) (MovementModel, error) {
	switch name {
	case "discrete":
		return Discrete{}, nil
	case "kinematic":
		return Kinematic{Acceleration: acceleration, Friction: friction}, nil
	}
	return nil, fmt.Errorf("grid: unknown movement model %q", name)
}
