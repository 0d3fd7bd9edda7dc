package systems

import (
	cfg "github.com/automoto/tilepaste/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameExit leaves the running game: back returns to the menu and
// quit ends the program. The high score is saved either way.
func NewUpdateGameExit(sceneChanger SceneChanger) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		switch {
		case GetAction(input, cfg.ActionQuit).JustPressed:
			SaveScore(e)
			sceneChanger.ChangeScene(cfg.SceneQuit)
		case GetAction(input, cfg.ActionBack).JustPressed:
			SaveScore(e)
			sceneChanger.ChangeScene(cfg.SceneMenu)
		}
	}
}
