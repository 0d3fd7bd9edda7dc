package systems

import (
	"testing"

	"github.com/automoto/tilepaste/assets"
	"github.com/automoto/tilepaste/components"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/shared/leveldata"
	"github.com/automoto/tilepaste/systems/factory"
	"github.com/automoto/tilepaste/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// withConfig restores the settings tests commonly change.
func withConfig(t *testing.T, movement, policy string, viewW, viewH int) {
	t.Helper()
	player, camera, view, audio := cfg.Player, cfg.Camera, cfg.View, cfg.Audio
	t.Cleanup(func() {
		cfg.Player, cfg.Camera, cfg.View, cfg.Audio = player, camera, view, audio
	})
	cfg.Player.Movement = movement
	cfg.Camera.Policy = policy
	cfg.Camera.MaxStep = 1
	cfg.View.Width, cfg.View.Height = viewW, viewH
	cfg.Audio.Enabled = false
}

func testAtlas(t *testing.T) assets.AtlasLayout {
	t.Helper()
	l, err := assets.NewAtlasLayout(128, 128, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

// newTestGame builds a w x h pattern world with the player at spawn.
func newTestGame(t *testing.T, w, h int, spawn leveldata.Cell, entities []leveldata.EntitySpawn) *ecs.ECS {
	t.Helper()
	pattern := leveldata.Pattern{
		Period: cfg.World.PatternPeriod,
		Border: cfg.World.BorderID,
		Even:   cfg.World.EvenRowID,
		Odd:    cfg.World.OddRowID,
	}
	layout, err := leveldata.Generate(w, h, pattern, spawn, entities)
	if err != nil {
		t.Fatal(err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	if err := factory.CreateLevel(e, layout, testAtlas(t)); err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}
	return e
}

// press makes action a new press on the next system run.
func press(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[action] = true
}

// hold keeps action down without a new press edge.
func hold(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Current[action] = true
	input.Previous[action] = true
}

func release(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Clicked = false
}

// frame runs the gameplay systems in scene order.
func frame(e *ecs.ECS) {
	UpdatePan(e)
	UpdatePlayer(e)
	UpdateCollect(e)
	UpdateCamera(e)
}

func testPlayer(t *testing.T, e *ecs.ECS) *components.PlayerData {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player")
	}
	return components.Player.Get(entry)
}

func testView(t *testing.T, e *ecs.ECS) *components.CameraData {
	t.Helper()
	entry, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatal("no camera")
	}
	return components.Camera.Get(entry)
}

func testWorld(t *testing.T, e *ecs.ECS) *components.TileWorldData {
	t.Helper()
	entry, ok := components.TileWorld.First(e.World)
	if !ok {
		t.Fatal("no tile world")
	}
	return components.TileWorld.Get(entry)
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	return GetOrCreateAudio(e).PendingSFX
}

func hasSFX(e *ecs.ECS, id cfg.SoundID) bool {
	for _, s := range pendingSFX(e) {
		if s == id {
			return true
		}
	}
	return false
}
