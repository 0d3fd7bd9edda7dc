package main

import (
	"flag"
	"image"
	"log"
	"slices"

	"github.com/automoto/tilepaste/assets"
	"github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/fonts"
	"github.com/automoto/tilepaste/scenes"
	"github.com/automoto/tilepaste/systems"
	"github.com/automoto/tilepaste/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	atlas  *assets.TileAtlas
	quit   bool
}

// ChangeScene switches to the scene for id. SceneQuit ends the game after
// the current frame.
func (g *Game) ChangeScene(id config.SceneID) {
	switch id {
	case config.SceneGame:
		g.scene = scenes.NewGameScene(g, g.atlas)
	case config.SceneMenu:
		g.scene = scenes.NewMenuScene(g)
	case config.SceneQuit:
		g.quit = true
	}
}

func NewGame(atlas *assets.TileAtlas) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		atlas:  atlas,
	}

	if config.Debug.SkipMenu {
		g.ChangeScene(config.SceneGame)
	} else {
		g.ChangeScene(config.SceneMenu)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	movement := flag.String("movement", "", "Movement model: discrete or kinematic (default: saved setting)")
	camera := flag.String("camera", "", "Camera policy: pan or follow (default: saved setting)")
	maxStep := flag.Int("camera-step", config.Camera.MaxStep, "Cells the follow camera moves per frame; 0 snaps")
	level := flag.String("level", config.World.Level, "TMX level under assets/levels (default: generated pattern world)")
	skipMenu := flag.Bool("skip-menu", config.Debug.SkipMenu, "Start in the game instead of the menu")
	debug := flag.Bool("debug", config.Debug.Overlay, "Draw collision boxes and camera state")
	mute := flag.Bool("mute", !config.Audio.Enabled, "Disable sound effects (default: saved setting)")
	flag.Parse()

	// Initialize persistence and load saved settings; flags win over them
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if *movement != "" {
		if !config.ValidMovement(*movement) {
			log.Fatalf("Unknown movement model %q (want one of %v)", *movement, config.SettingsMenu.MovementModels)
		}
		config.Player.Movement = *movement
	}
	if *camera != "" {
		if !config.ValidCameraPolicy(*camera) {
			log.Fatalf("Unknown camera policy %q (want one of %v)", *camera, config.SettingsMenu.CameraPolicies)
		}
		config.Camera.Policy = *camera
	}
	if *level != "" {
		names, err := assets.LevelNames()
		if err != nil {
			log.Fatalf("Failed to list levels: %v", err)
		}
		if !slices.Contains(names, *level) {
			log.Fatalf("Unknown level %q (want one of %v)", *level, names)
		}
	}
	config.Camera.MaxStep = *maxStep
	config.World.Level = *level
	config.Debug.SkipMenu = *skipMenu
	config.Debug.Overlay = *debug
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "mute" {
			config.Audio.Enabled = !*mute
		}
	})

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Atlas and level problems are fatal before the window opens
	atlas := assets.MustLoadAtlas()
	layout, err := factory.LoadLayout()
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	if err := factory.CheckAtlas(layout, atlas.Layout); err != nil {
		log.Fatalf("Atlas check failed: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(atlas)); err != nil {
		log.Fatal(err)
	}
}
