package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	// GroundLayer is the tile layer read into the world grid.
	GroundLayer = "ground"
	// PlayerObject is the object name marking the player's start cell.
	PlayerObject = "player"
	// TexIDProperty is the object property holding an entity's tile id.
	TexIDProperty = "texId"
	// PassableProperty marks an entity the player may walk through.
	PassableProperty = "passable"
)

// LoadTMX parses a TMX file from fsys. Rows are flipped so that the top row
// in the editor becomes the highest y. Tile ids are tileset-local, so they
// index the atlas directly. Empty cells take the fill id.
func LoadTMX(fsys fs.FS, tmxPath string, fill uint32) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	l := &Layout{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  m.Width,
		Height: m.Height,
		Cells:  make([]uint32, m.Width*m.Height),
	}

	var ground *tiled.Layer
	for _, layer := range m.Layers {
		if layer.Name == GroundLayer {
			ground = layer
			break
		}
	}
	if ground == nil {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, GroundLayer)
	}
	for row := 0; row < m.Height; row++ {
		y := m.Height - 1 - row
		for x := 0; x < m.Width; x++ {
			tile := ground.Tiles[row*m.Width+x]
			id := fill
			if !tile.IsNil() {
				id = tile.ID
			}
			l.Cells[y*m.Width+x] = id
		}
	}

	tileW, tileH := float64(m.TileWidth), float64(m.TileHeight)
	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			// Tiled measures y down from the top edge; cells grow upward
			x := o.X / tileW
			y := float64(m.Height-1) - o.Y/tileH
			if o.Name == PlayerObject {
				l.Spawn = Cell{X: int(math.Floor(x)), Y: m.Height - 1 - int(math.Floor(o.Y/tileH))}
				continue
			}
			texID := o.Properties.GetInt(TexIDProperty)
			if texID <= 0 {
				continue
			}
			l.Entities = append(l.Entities, EntitySpawn{
				Name:  o.Name,
				X:     x,
				Y:     y,
				TexID: uint32(texID),
				Solid: !o.Properties.GetBool(PassableProperty),
			})
		}
	}

	// Deterministic draw order: bottom rows last so they overlap upper ones.
	sort.SliceStable(l.Entities, func(i, j int) bool {
		return l.Entities[i].Y > l.Entities[j].Y
	})

	return l, nil
}

// ListLevels returns the stem names of all .tmx files in dir, sorted.
func ListLevels(fsys fs.FS, dir string) ([]string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(path), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}
