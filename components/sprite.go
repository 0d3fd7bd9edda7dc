package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData places one atlas entry at a world position in cells.
type SpriteData struct {
	Name  string
	TexID uint32
	X, Y  float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
