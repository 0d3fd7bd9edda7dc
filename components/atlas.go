package components

import (
	"github.com/automoto/tilepaste/assets"
	"github.com/yohamta/donburi"
)

type AtlasData struct {
	*assets.TileAtlas
}

var Atlas = donburi.NewComponentType[AtlasData]()
