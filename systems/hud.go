package systems

import (
	cfg "github.com/automoto/tilepaste/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// HUDBandHeight is the pixel height of the strip below the playfield on a
// screen of the given height.
func HUDBandHeight(screenHeight int) int {
	return int(cfg.View.UIShim / 2 * float64(screenHeight))
}

// DrawHUDBand clears the strip below the playfield so HUD text sits on a
// solid background.
func DrawHUDBand(e *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	band := HUDBandHeight(h)
	if band <= 0 {
		return
	}
	vector.FillRect(screen, 0, float32(h-band), float32(w), float32(band), cfg.HUD.Background, false)
}
