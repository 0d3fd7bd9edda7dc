package grid

// Direction is the way the player faces.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	directionCount
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Delta returns the unit grid step for d. Up grows y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// DirectionSprites maps each facing to a tile id.
type DirectionSprites [directionCount]uint32

// For returns the sprite for facing d.
func (s DirectionSprites) For(d Direction) uint32 {
	if d < 0 || d >= directionCount {
		return s[Down]
	}
	return s[d]
}
