package components

import (
	"github.com/automoto/tilepaste/shared/grid"
	"github.com/yohamta/donburi"
)

// CameraData wraps the view window. Its policy decides how the view reacts to
// the player and which bounds the player is confined to.
type CameraData struct {
	*grid.View
}

var Camera = donburi.NewComponentType[CameraData]()
