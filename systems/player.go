package systems

import (
	"github.com/automoto/tilepaste/components"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/shared/grid"
	"github.com/automoto/tilepaste/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameSeconds is the fixed timestep of one Update call.
func frameSeconds() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdatePlayer applies this frame's movement intent with the configured model,
// confined to the bounds the camera policy allows.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	view := components.Camera.Get(cameraEntry).View
	obj := components.Object.Get(playerEntry).Object

	in := MovementIntent(getOrCreateInput(e))
	fromX, fromY := player.Cell()
	dt := frameSeconds()

	player.Model.Move(player.Player, in, dt, view.Policy.Confine(view), spaceBlocker(obj))
	syncPlayerObject(obj, player)

	toX, toY := player.Cell()
	if _, discrete := player.Model.(grid.Discrete); discrete {
		if len(in.Steps) > 0 && fromX == toX && fromY == toY {
			PlaySFX(e, cfg.SoundBump)
		}
		if fromX != toX || fromY != toY {
			startStepTween(player)
		}
		updateStepTween(player, dt)
		return
	}

	player.DrawX, player.DrawY = player.Pos.X, player.Pos.Y
}

// spaceBlocker reports whether moving the player's collision box by (dx, dy)
// cells from (fromX, fromY) would overlap a solid object.
func spaceBlocker(obj *resolv.Object) grid.BlockFunc {
	cp := float64(cfg.World.CellPixels)
	inset := cfg.Player.CollisionInset
	return func(fromX, fromY, dx, dy float64) bool {
		obj.X = fromX*cp + inset
		obj.Y = fromY*cp + inset
		obj.Update()

		check := obj.Check(dx*cp, dy*cp, tags.ResolvSolid)
		if check == nil {
			return false
		}
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if obj.Shape.Intersection(dx*cp, dy*cp, solid.Shape) != nil {
				return true
			}
		}
		return false
	}
}

// syncPlayerObject moves the collision box to the player's position.
func syncPlayerObject(obj *resolv.Object, player *components.PlayerData) {
	cp := float64(cfg.World.CellPixels)
	obj.X = player.Pos.X*cp + cfg.Player.CollisionInset
	obj.Y = player.Pos.Y*cp + cfg.Player.CollisionInset
	obj.Update()
}

func startStepTween(player *components.PlayerData) {
	d := cfg.Player.StepTweenSeconds
	if d <= 0 {
		player.TweenX, player.TweenY = nil, nil
		player.DrawX, player.DrawY = player.Pos.X, player.Pos.Y
		return
	}
	player.TweenX = gween.New(float32(player.DrawX), float32(player.Pos.X), d, ease.OutQuad)
	player.TweenY = gween.New(float32(player.DrawY), float32(player.Pos.Y), d, ease.OutQuad)
}

func updateStepTween(player *components.PlayerData, dt float64) {
	if player.TweenX == nil || player.TweenY == nil {
		player.DrawX, player.DrawY = player.Pos.X, player.Pos.Y
		return
	}
	x, doneX := player.TweenX.Update(float32(dt))
	y, doneY := player.TweenY.Update(float32(dt))
	player.DrawX, player.DrawY = float64(x), float64(y)
	if doneX && doneY {
		player.TweenX, player.TweenY = nil, nil
		player.DrawX, player.DrawY = player.Pos.X, player.Pos.Y
	}
}

// SnapPlayer drops any running tween and draws the player at its position.
func SnapPlayer(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	player.TweenX, player.TweenY = nil, nil
	player.DrawX, player.DrawY = player.Pos.X, player.Pos.Y
	syncPlayerObject(components.Object.Get(entry).Object, player)
}
