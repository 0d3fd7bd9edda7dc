package grid

import (
	"fmt"
	"math"

	"github.com/automoto/tilepaste/shared/gamemath"
)

// Bounds is an inclusive rectangle of grid cells.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether cell (x, y) lies within b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Overlaps reports whether the one-cell square with lower-left corner (x, y)
// covers any part of b.
func (b Bounds) Overlaps(x, y float64) bool {
	return x > float64(b.MinX)-1 && x < float64(b.MaxX)+1 &&
		y > float64(b.MinY)-1 && y < float64(b.MaxY)+1
}

// Policy decides how a view reacts to the player each frame and which cells
// the player may step into.
type Policy interface {
	// Track moves the view in response to the player's world position.
	Track(v *View, px, py float64)
	// Confine returns the cells the player is allowed to occupy.
	Confine(v *View) Bounds
	Name() string
}

// View is a rectangular window over a world. Its origin always satisfies
// 0 <= X <= WorldWidth-Width and 0 <= Y <= WorldHeight-Height.
type View struct {
	X, Y          int
	Width, Height int
	WorldWidth    int
	WorldHeight   int
	Policy        Policy
}

// NewView creates a width x height view over world at origin (x, y). The
// origin is clamped into the world. A nil policy means PanPolicy.
func NewView(world *World, x, y, width, height int, policy Policy) (*View, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("view %dx%d: %w", width, height, ErrDegenerate)
	}
	if width > world.Width || height > world.Height {
		return nil, fmt.Errorf("view %dx%d over world %dx%d: %w",
			width, height, world.Width, world.Height, ErrViewTooLarge)
	}
	if policy == nil {
		policy = PanPolicy{}
	}
	v := &View{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		WorldWidth:  world.Width,
		WorldHeight: world.Height,
		Policy:      policy,
	}
	v.Clamp()
	return v, nil
}

// Clamp pulls the origin back inside the world.
func (v *View) Clamp() {
	v.X = gamemath.ClampInt(v.X, 0, v.WorldWidth-v.Width)
	v.Y = gamemath.ClampInt(v.Y, 0, v.WorldHeight-v.Height)
}

func (v *View) Up() {
	v.Y++
	v.Clamp()
}

func (v *View) Down() {
	v.Y--
	v.Clamp()
}

func (v *View) Left() {
	v.X--
	v.Clamp()
}

func (v *View) Right() {
	v.X++
	v.Clamp()
}

// Pan moves the view one cell in direction d.
func (v *View) Pan(d Direction) {
	switch d {
	case Up:
		v.Up()
	case Down:
		v.Down()
	case Left:
		v.Left()
	case Right:
		v.Right()
	}
}

// Visible returns the cells currently on screen.
func (v *View) Visible() Bounds {
	return Bounds{MinX: v.X, MinY: v.Y, MaxX: v.X + v.Width - 1, MaxY: v.Y + v.Height - 1}
}

// World returns every cell of the underlying world.
func (v *View) World() Bounds {
	return Bounds{MaxX: v.WorldWidth - 1, MaxY: v.WorldHeight - 1}
}

// Local converts a world position to view-local coordinates.
func (v *View) Local(wx, wy float64) (float64, float64) {
	return wx - float64(v.X), wy - float64(v.Y)
}

// TrackPlayer scrolls toward the cell holding (px, py) whenever it sits on
// or past the far edge or before the near edge of the view. Each axis moves
// at most maxStep cells; maxStep <= 0 closes the whole gap.
func (v *View) TrackPlayer(px, py float64, maxStep int) {
	cx := gamemath.ClampInt(int(math.Floor(px)), 0, v.WorldWidth-1)
	cy := gamemath.ClampInt(int(math.Floor(py)), 0, v.WorldHeight-1)

	v.X += trackAxis(cx, v.X, v.Width, maxStep)
	v.Y += trackAxis(cy, v.Y, v.Height, maxStep)
	v.Clamp()
}

func trackAxis(p, origin, dim, maxStep int) int {
	var gap int
	switch {
	case p >= origin+dim:
		gap = p - (origin + dim) + 1
	case p < origin:
		gap = p - origin
	default:
		return 0
	}
	if maxStep <= 0 {
		return gap
	}
	if gap > maxStep {
		return maxStep
	}
	if gap < -maxStep {
		return -maxStep
	}
	return gap
}

// PanPolicy leaves the view where explicit pan commands put it and keeps
// the player inside the visible cells.
type PanPolicy struct{}

func (PanPolicy) Track(v *View, _, _ float64) { v.Clamp() }

func (PanPolicy) Confine(v *View) Bounds { return v.Visible() }

func (PanPolicy) Name() string { return "pan" }

// FollowPolicy scrolls the view toward the player, at most MaxStep cells
// per axis per frame. MaxStep <= 0 snaps in a single frame.
type FollowPolicy struct {
	MaxStep int
}

func (p FollowPolicy) Track(v *View, px, py float64) { v.TrackPlayer(px, py, p.MaxStep) }

func (FollowPolicy) Confine(v *View) Bounds { return v.World() }

func (FollowPolicy) Name() string { return "follow" }

// PolicyByName returns the policy registered under name.
func PolicyByName(name string, maxStep int) (Policy, error) {
	switch name {
	case "pan":
		return PanPolicy{}, nil
	case "follow":
		return FollowPolicy{MaxStep: maxStep}, nil
	}
	return nil, fmt.Errorf("grid: unknown camera policy %q", name)
}
