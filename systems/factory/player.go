package factory

import (
	"github.com/automoto/tilepaste/archetypes"
	"github.com/automoto/tilepaste/components"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/shared/grid"
	"github.com/automoto/tilepaste/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerSprites are the configured atlas ids per facing.
func PlayerSprites() grid.DirectionSprites {
	var s grid.DirectionSprites
	s[grid.Up] = cfg.Player.SpriteUp
	s[grid.Down] = cfg.Player.SpriteDown
	s[grid.Left] = cfg.Player.SpriteLeft
	s[grid.Right] = cfg.Player.SpriteRight
	return s
}

func CreatePlayer(ecs *ecs.ECS, x, y int, model grid.MovementModel) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	cp := float64(cfg.World.CellPixels)
	size := cp - 2*cfg.Player.CollisionInset
	obj := resolv.NewObject(float64(x)*cp+cfg.Player.CollisionInset, float64(y)*cp+cfg.Player.CollisionInset, size, size)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Player:    grid.NewPlayer(float64(x), float64(y), PlayerSprites()),
		Model:     model,
		DrawX:     float64(x),
		DrawY:     float64(y),
		LastCellX: x,
		LastCellY: y,
	})

	return player
}
