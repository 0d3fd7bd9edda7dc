package grid

import (
	"math"

	"github.com/automoto/tilepaste/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// BlockFunc reports whether moving from (fromX, fromY) by (dx, dy) runs into
// something solid. A nil BlockFunc blocks nothing.
type BlockFunc func(fromX, fromY, dx, dy float64) bool

// Player is the controllable character. Pos is the lower-left corner of the
// cell it occupies, in world cells.
type Player struct {
	Pos     dmath.Vec2
	Vel     dmath.Vec2
	Facing  Direction
	Sprites DirectionSprites
}

// NewPlayer places a player facing down at (x, y).
func NewPlayer(x, y float64, sprites DirectionSprites) *Player {
	return &Player{
		Pos:     dmath.NewVec2(x, y),
		Facing:  Down,
		Sprites: sprites,
	}
}

// Cell returns the grid cell the player's position falls in.
func (p *Player) Cell() (int, int) {
	return int(math.Floor(p.Pos.X)), int(math.Floor(p.Pos.Y))
}

// Sprite returns the tile id for the current facing.
func (p *Player) Sprite() uint32 {
	return p.Sprites.For(p.Facing)
}

// Step turns the player toward d and moves it one cell, staying inside b and
// out of anything blocked reports. It returns whether the position changed.
func (p *Player) Step(d Direction, b Bounds, blocked BlockFunc) bool {
	p.Facing = d
	dx, dy := d.Delta()
	cx, cy := p.Cell()
	nx := gamemath.ClampInt(cx+dx, b.MinX, b.MaxX)
	ny := gamemath.ClampInt(cy+dy, b.MinY, b.MaxY)
	if nx == cx && ny == cy {
		return false
	}
	if blocked != nil && blocked(p.Pos.X, p.Pos.Y, float64(nx-cx), float64(ny-cy)) {
		return false
	}
	p.Pos = dmath.NewVec2(float64(nx), float64(ny))
	return true
}

func (p *Player) Up(b Bounds) bool    { return p.Step(Up, b, nil) }
func (p *Player) Down(b Bounds) bool  { return p.Step(Down, b, nil) }
func (p *Player) Left(b Bounds) bool  { return p.Step(Left, b, nil) }
func (p *Player) Right(b Bounds) bool { return p.Step(Right, b, nil) }

// ClampTo pulls the player inside b, zeroing velocity on any clamped axis.
func (p *Player) ClampTo(b Bounds) {
	x := gamemath.ClampFloat(p.Pos.X, float64(b.MinX), float64(b.MaxX))
	y := gamemath.ClampFloat(p.Pos.Y, float64(b.MinY), float64(b.MaxY))
	if x != p.Pos.X {
		p.Vel.X = 0
	}
	if y != p.Pos.Y {
		p.Vel.Y = 0
	}
	p.Pos = dmath.NewVec2(x, y)
}

// Face updates the facing from an input vector. A purely vertical or purely
// horizontal input picks that axis; a diagonal picks the larger component,
// horizontal on ties. No input keeps the current facing.
func (p *Player) Face(mx, my float64) {
	switch {
	case mx == 0 && my == 0:
		return
	case mx == 0:
		p.Facing = verticalFacing(my)
	case my == 0:
		p.Facing = horizontalFacing(mx)
	case math.Abs(my) > math.Abs(mx):
		p.Facing = verticalFacing(my)
	default:
		p.Facing = horizontalFacing(mx)
	}
}

func verticalFacing(my float64) Direction {
	if my > 0 {
		return Up
	}
	return Down
}

func horizontalFacing(mx float64) Direction {
	if mx > 0 {
		return Right
	}
	return Left
}
