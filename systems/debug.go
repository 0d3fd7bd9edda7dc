package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilepaste/components"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/shared/gamemath"
	"github.com/automoto/tilepaste/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSolidColor  = color.RGBA{100, 100, 100, 255}
	debugPlayerColor = color.RGBA{0, 0, 255, 255}
	debugViewColor   = color.RGBA{0, 255, 255, 255}
)

// DrawDebug outlines collision boxes inside the view and prints the player
// and view state. Enabled with -debug.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	view := components.Camera.Get(cameraEntry).View
	pf := Playfield(view)
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	cp := float64(cfg.World.CellPixels)
	vis := view.Visible()

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Cull objects outside the view
			if !vis.Contains(int(obj.X/cp), int(obj.Y/cp)) {
				continue
			}

			c := debugSolidColor
			if obj.HasTags(tags.ResolvPlayer) {
				c = debugPlayerColor
			}

			lx, ly := view.Local(obj.X/cp, obj.Y/cp)
			x0, y0 := cellCorner(pf, lx, ly, sw, sh)
			x1, y1 := cellCorner(pf, lx+obj.W/cp, ly+obj.H/cp, sw, sh)
			vector.StrokeRect(screen, float32(x0), float32(y1), float32(x1-x0), float32(y0-y1), 1, c, false)
		}
	}

	// View outline
	x0, y0 := gamemath.NDCToScreen(-1, -1+cfg.View.UIShim, sw, sh)
	x1, y1 := gamemath.NDCToScreen(1, 1, sw, sh)
	vector.StrokeRect(screen, float32(x0), float32(y1), float32(x1-x0), float32(y0-y1), 1, debugViewColor, false)

	msg := fmt.Sprintf("TPS %.0f  view %d,%d (%s)", ebiten.ActualTPS(), view.X, view.Y, view.Policy.Name())
	if playerEntry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		cx, cy := player.Cell()
		msg += fmt.Sprintf("\nplayer %d,%d facing %s (%s)", cx, cy, player.Facing, player.Model.Name())
	}
	ebitenutil.DebugPrint(screen, msg)
}

// cellCorner returns the screen position of the lower-left corner of local
// cell (lx, ly).
func cellCorner(pf gamemath.Playfield, lx, ly, sw, sh float64) (float64, float64) {
	x, y := pf.CellTransform(lx, ly).Apply(-1, -1)
	return gamemath.NDCToScreen(x, y, sw, sh)
}
