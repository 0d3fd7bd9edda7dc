package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tilepaste/assets"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/systems"
	"github.com/automoto/tilepaste/systems/factory"
	"github.com/automoto/tilepaste/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene is the tile world: the player walks it, the view follows or is
// panned, and collectable tiles score.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	atlas        *assets.TileAtlas
	hud          *ui.HUD
	once         sync.Once
}

func NewGameScene(sc SceneChanger, atlas *assets.TileAtlas) *GameScene {
	return &GameScene{sceneChanger: sc, atlas: atlas}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	// The cutout shader is optional; tiles fall back to plain draws
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	gs.hud = ui.NewHUD()

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Gameplay freezes while paused
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePan))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCollect))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	e.AddSystem(func(e *ecs.ECS) {
		gs.hud.SetScore(systems.ScoreText(e))
		gs.hud.Update()
	})
	e.AddSystem(systems.NewUpdateGameExit(gs.sceneChanger))
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUDBand)
	e.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) { gs.hud.Draw(screen) })
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	gs.ecs = e

	layout, err := factory.LoadLayout()
	if err != nil {
		panic("failed to load level: " + err.Error())
	}
	if err := factory.CreateLevel(gs.ecs, layout, gs.atlas.Layout); err != nil {
		panic("failed to build level: " + err.Error())
	}
	factory.CreateAtlas(gs.ecs, gs.atlas)
	systems.GetOrCreateScore(gs.ecs)

	log.Printf("Started %s (%dx%d), movement %s, camera %s",
		layout.Name, layout.Width, layout.Height, cfg.Player.Movement, cfg.Camera.Policy)
}
