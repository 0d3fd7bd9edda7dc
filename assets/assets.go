package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path"

	"github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

var imageCache = make(map[string]*ebiten.Image)

// MustLoadImage decodes an embedded image, caching by path.
func MustLoadImage(p string) *ebiten.Image {
	if img, ok := imageCache[p]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(p)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", p, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", p, err))
	}

	imageCache[p] = img
	return img
}

// MustLoadAtlas builds the tile atlas described by config.Atlas. There is no
// fallback: a bad sheet stops the game at startup.
func MustLoadAtlas() *TileAtlas {
	sheet := MustLoadImage(config.Atlas.Path)
	atlas, err := NewTileAtlas(sheet, config.Atlas.TileWidth, config.Atlas.TileHeight)
	if err != nil {
		panic(fmt.Sprintf("Failed to build atlas from %s: %v", config.Atlas.Path, err))
	}
	return atlas
}

// LevelNames lists the embedded TMX levels.
func LevelNames() ([]string, error) {
	return leveldata.ListLevels(levelFS, "levels")
}

// LoadLevel parses the embedded TMX level called name.
func LoadLevel(name string) (*leveldata.Layout, error) {
	return leveldata.LoadTMX(levelFS, path.Join("levels", name+".tmx"), config.World.ErrorTileID)
}
