package archetypes

import (
	"github.com/automoto/tilepaste/components"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	// Solid entities block movement and are drawn from the atlas.
	Solid = newArchetype(
		tags.Solid,
		components.Sprite,
		components.Object,
	)
	// Props are drawn but never collide.
	Prop = newArchetype(
		tags.Prop,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	TileWorld = newArchetype(
		components.TileWorld,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Atlas = newArchetype(
		components.Atlas,
	)
	Score = newArchetype(
		components.Score,
	)
	Menu = newArchetype(
		components.Menu,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
