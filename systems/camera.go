package systems

import (
	"github.com/automoto/tilepaste/components"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/shared/grid"
	"github.com/automoto/tilepaste/tags"
	"github.com/yohamta/donburi/ecs"
)

var panActions = [...]struct {
	action cfg.ActionID
	dir    grid.Direction
}{
	{cfg.ActionPanUp, grid.Up},
	{cfg.ActionPanDown, grid.Down},
	{cfg.ActionPanLeft, grid.Left},
	{cfg.ActionPanRight, grid.Right},
}

// UpdatePan moves the view one cell per arrow press under the pan policy.
// The player is pulled back inside the view when a pan leaves it behind.
// Runs before UpdatePlayer.
func UpdatePan(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	view := components.Camera.Get(cameraEntry).View
	if _, pan := view.Policy.(grid.PanPolicy); !pan {
		return
	}

	input := getOrCreateInput(e)
	moved := false
	for _, p := range panActions {
		if GetAction(input, p.action).JustPressed {
			view.Pan(p.dir)
			moved = true
		}
	}
	if !moved {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	x, y := player.Cell()
	if !view.Visible().Contains(x, y) {
		player.ClampTo(view.Visible())
		SnapPlayer(playerEntry)
	}
}

// UpdateCamera lets the view policy react to where the player ended up this
// frame. Runs after UpdatePlayer.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	view := components.Camera.Get(cameraEntry).View

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		view.Clamp()
		return
	}
	player := components.Player.Get(playerEntry)
	view.Policy.Track(view, player.Pos.X, player.Pos.Y)
}
