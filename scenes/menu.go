package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/systems"
	"github.com/automoto/tilepaste/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(id cfg.SceneID)
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.settingsUI = ui.NewSettingsUI(systems.CycleMovement, systems.CycleCameraPolicy)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger))
	ms.ecs.AddSystem(func(_ *ecs.ECS) { ms.settingsUI.Update() })
	ms.ecs.AddSystem(systems.UpdateAudio)

	// Settings draw on top of the menu
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
	ms.ecs.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) { ms.settingsUI.Draw(screen) })
}
