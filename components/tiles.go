package components

import (
	"github.com/automoto/tilepaste/shared/grid"
	"github.com/yohamta/donburi"
)

// TileWorldData is the singleton tile grid the scene plays on.
type TileWorldData struct {
	*grid.World
	LevelName string // Empty when generated from the pattern
}

var TileWorld = donburi.NewComponentType[TileWorldData]()
