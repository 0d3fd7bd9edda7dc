package factory

import (
	"github.com/automoto/tilepaste/archetypes"
	"github.com/automoto/tilepaste/components"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/shared/leveldata"
	"github.com/automoto/tilepaste/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEntity spawns a static entity. Solid ones get a full-cell collision
// box on the cell they start in; the rest are drawn only.
func CreateEntity(ecs *ecs.ECS, spawn leveldata.EntitySpawn) *donburi.Entry {
	sprite := components.SpriteData{
		Name:  spawn.Name,
		TexID: spawn.TexID,
		X:     spawn.X,
		Y:     spawn.Y,
	}

	if !spawn.Solid {
		prop := archetypes.Prop.Spawn(ecs)
		components.Sprite.SetValue(prop, sprite)
		return prop
	}

	solid := archetypes.Solid.Spawn(ecs)
	components.Sprite.SetValue(solid, sprite)

	cp := float64(cfg.World.CellPixels)
	cell := spawn.Cell()
	obj := resolv.NewObject(float64(cell.X)*cp, float64(cell.Y)*cp, cp, cp, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, cp, cp))
	obj.Data = solid // Link for O(1) lookup

	components.Object.SetValue(solid, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return solid
}
