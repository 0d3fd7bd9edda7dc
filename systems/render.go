package systems

import (
	"github.com/automoto/tilepaste/assets"
	"github.com/automoto/tilepaste/components"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/shared/gamemath"
	"github.com/automoto/tilepaste/shared/grid"
	"github.com/automoto/tilepaste/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// Playfield is the NDC layout of the view for the current configuration.
func Playfield(view *grid.View) gamemath.Playfield {
	return gamemath.Playfield{
		ViewWidth:  view.Width,
		ViewHeight: view.Height,
		UIShim:     cfg.View.UIShim,
	}
}

// DrawWorld renders the visible tiles, then entities, then the player, each
// as an atlas quad placed by the playfield transform.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	atlasEntry, ok := components.Atlas.First(e.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	worldEntry, ok := components.TileWorld.First(e.World)
	if !ok {
		return
	}
	atlas := components.Atlas.Get(atlasEntry).TileAtlas
	view := components.Camera.Get(cameraEntry).View
	world := components.TileWorld.Get(worldEntry)

	pf := Playfield(view)
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	vis := view.Visible()

	for y := vis.MinY; y <= vis.MaxY; y++ {
		for x := vis.MinX; x <= vis.MaxX; x++ {
			id := world.LookupOr(x, y, cfg.World.ErrorTileID)
			lx, ly := view.Local(float64(x), float64(y))
			drawTile(screen, atlas, id, pf.CellTransform(lx, ly), sw, sh)
		}
	}

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.Sprite.Get(entry)
		if !vis.Overlaps(sprite.X, sprite.Y) {
			return
		}
		lx, ly := view.Local(sprite.X, sprite.Y)
		drawTile(screen, atlas, sprite.TexID, pf.CellTransform(lx, ly), sw, sh)
	})

	if playerEntry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		lx, ly := view.Local(player.DrawX, player.DrawY)
		drawTile(screen, atlas, player.Sprite(), pf.CellTransform(lx, ly), sw, sh)
	}
}

// drawTile draws atlas entry id with the model transform m. Ids without an
// entry draw the error tile; startup validation keeps that from happening.
func drawTile(screen *ebiten.Image, atlas *assets.TileAtlas, id uint32, m gamemath.Mat4, sw, sh float64) {
	img, ok := atlas.Tile(id)
	if !ok {
		if img, ok = atlas.Tile(cfg.World.ErrorTileID); !ok {
			return
		}
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	geo := gamemath.QuadGeoM(m, float64(w), float64(h), sw, sh)

	if assets.CutoutShader != nil {
		shaderOp.GeoM = geo
		shaderOp.Images[0] = img
		screen.DrawRectShader(w, h, assets.CutoutShader, shaderOp)
		return
	}

	drawOp.GeoM = geo
	screen.DrawImage(img, drawOp)
}
