package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Diagonal is the per-axis factor a full two-axis digital input ends up
// with, so diagonal movement has the same magnitude as axis-aligned movement.
var Diagonal = math.Sin(math.Pi / 4)

// NormalizeInput limits an input vector to unit length. Digital diagonals
// (each axis -1 or 1) come out at Diagonal per axis; analog input already
// inside the unit circle is left alone.
func NormalizeInput(mx, my float64) dmath.Vec2 {
	l := math.Hypot(mx, my)
	if l <= 1 {
		return dmath.NewVec2(mx, my)
	}
	return dmath.NewVec2(mx/l, my/l)
}

// Integrate advances position and velocity by dt using semi-implicit Euler
// with a friction term proportional to the current velocity. friction is
// expected to be negative.
//
//	a    = friction*vel + accel
//	vel' = vel + a*dt
//	pos' = pos + vel*dt + 0.5*a*dt^2
func Integrate(pos, vel, accel dmath.Vec2, friction, dt float64) (dmath.Vec2, dmath.Vec2) {
	a := vel.MulScalar(friction).Add(accel)
	nextPos := pos.Add(vel.MulScalar(dt)).Add(a.MulScalar(0.5 * dt * dt))
	nextVel := vel.Add(a.MulScalar(dt))
	return nextPos, nextVel
}

// ClampFloat restricts v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
