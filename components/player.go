package components

import (
	"github.com/automoto/tilepaste/shared/grid"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	*grid.Player
	Model grid.MovementModel

	// Where the sprite is drawn, in world cells. Trails Pos while a step
	// tween runs under the discrete model.
	DrawX, DrawY float64
	TweenX       *gween.Tween
	TweenY       *gween.Tween

	LastCellX, LastCellY int
}

var Player = donburi.NewComponentType[PlayerData]()
