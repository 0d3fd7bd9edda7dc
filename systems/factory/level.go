package factory

import (
	"fmt"

	"github.com/automoto/tilepaste/archetypes"
	"github.com/automoto/tilepaste/assets"
	"github.com/automoto/tilepaste/components"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/shared/grid"
	"github.com/automoto/tilepaste/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadLayout returns the configured TMX level, or the pattern world when no
// level is set.
func LoadLayout() (*leveldata.Layout, error) {
	if cfg.World.Level != "" {
		return assets.LoadLevel(cfg.World.Level)
	}
	pattern := leveldata.Pattern{
		Period: cfg.World.PatternPeriod,
		Border: cfg.World.BorderID,
		Even:   cfg.World.EvenRowID,
		Odd:    cfg.World.OddRowID,
	}
	spawn := leveldata.Cell{X: cfg.World.Width / 2, Y: cfg.World.Height / 2}
	entities := make([]leveldata.EntitySpawn, len(cfg.World.DefaultEntities))
	copy(entities, cfg.World.DefaultEntities)
	return leveldata.Generate(cfg.World.Width, cfg.World.Height, pattern, spawn, entities)
}

// CheckAtlas fails if the layout or the player uses an id the atlas has no
// entry for.
func CheckAtlas(layout *leveldata.Layout, atlas assets.AtlasLayout) error {
	ids := append([]uint32{cfg.World.ErrorTileID, cfg.World.CollectedID}, layout.Cells...)
	for _, e := range layout.Entities {
		ids = append(ids, e.TexID)
	}
	sprites := PlayerSprites()
	ids = append(ids, sprites[:]...)
	if err := atlas.Check(ids...); err != nil {
		return fmt.Errorf("level %s: %w", layout.Name, err)
	}
	return nil
}

func CreateTileWorld(ecs *ecs.ECS, layout *leveldata.Layout) (*donburi.Entry, error) {
	world, err := grid.NewWorld(layout.Width, layout.Height, layout.At)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", layout.Name, err)
	}
	entry := archetypes.TileWorld.Spawn(ecs)
	components.TileWorld.SetValue(entry, components.TileWorldData{
		World:     world,
		LevelName: layout.Name,
	})
	return entry, nil
}

// CreateLevel builds the playable scene from layout: collision space, tile
// world, entities, the player and the camera. Movement model and camera
// policy come from the configuration.
func CreateLevel(ecs *ecs.ECS, layout *leveldata.Layout, atlas assets.AtlasLayout) error {
	if err := CheckAtlas(layout, atlas); err != nil {
		return err
	}
	model, err := grid.ModelByName(cfg.Player.Movement, cfg.Player.Acceleration, cfg.Player.Friction)
	if err != nil {
		return err
	}
	policy, err := grid.PolicyByName(cfg.Camera.Policy, cfg.Camera.MaxStep)
	if err != nil {
		return err
	}

	cp := cfg.World.CellPixels
	CreateSpace(ecs, layout.Width*cp, layout.Height*cp, cp, cp)

	worldEntry, err := CreateTileWorld(ecs, layout)
	if err != nil {
		return err
	}
	world := components.TileWorld.Get(worldEntry).World

	if !world.InBounds(layout.Spawn.X, layout.Spawn.Y) {
		return fmt.Errorf("level %s: spawn %d,%d outside the world", layout.Name, layout.Spawn.X, layout.Spawn.Y)
	}

	for _, spawn := range layout.Entities {
		if c := spawn.Cell(); !world.InBounds(c.X, c.Y) {
			return fmt.Errorf("level %s: %s at %g,%g outside the world", layout.Name, spawn.Name, spawn.X, spawn.Y)
		}
		CreateEntity(ecs, spawn)
	}

	CreatePlayer(ecs, layout.Spawn.X, layout.Spawn.Y, model)

	_, err = CreateCamera(ecs, world, cfg.View.Width, cfg.View.Height, layout.Spawn.X, layout.Spawn.Y, policy)
	return err
}

func CreateAtlas(ecs *ecs.ECS, atlas *assets.TileAtlas) *donburi.Entry {
	entry := archetypes.Atlas.Spawn(ecs)
	components.Atlas.SetValue(entry, components.AtlasData{TileAtlas: atlas})
	return entry
}
