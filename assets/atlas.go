package assets

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrAtlasDimensions means the sheet does not divide evenly into tiles.
	ErrAtlasDimensions = errors.New("atlas: image size is not a multiple of the tile size")
	// ErrAtlasNotSquare means the tiles do not form a square grid.
	ErrAtlasNotSquare = errors.New("atlas: entry count is not a perfect square")
	// ErrNoSuchEntry means a tile id has no atlas entry.
	ErrNoSuchEntry = errors.New("atlas: no such entry")
)

// AtlasLayout partitions a sheet into equally sized entries, numbered
// row-major from the top-left.
type AtlasLayout struct {
	ImageWidth  int
	ImageHeight int
	TileWidth   int
	TileHeight  int
	Columns     int
	Rows        int
}

// NewAtlasLayout validates the sheet dimensions. The image must divide evenly
// into tiles and the tiles must form a square grid.
func NewAtlasLayout(imageWidth, imageHeight, tileWidth, tileHeight int) (AtlasLayout, error) {
	if tileWidth <= 0 || tileHeight <= 0 || imageWidth <= 0 || imageHeight <= 0 ||
		imageWidth%tileWidth != 0 || imageHeight%tileHeight != 0 {
		return AtlasLayout{}, fmt.Errorf("%dx%d sheet, %dx%d tiles: %w",
			imageWidth, imageHeight, tileWidth, tileHeight, ErrAtlasDimensions)
	}
	l := AtlasLayout{
		ImageWidth:  imageWidth,
		ImageHeight: imageHeight,
		TileWidth:   tileWidth,
		TileHeight:  tileHeight,
		Columns:     imageWidth / tileWidth,
		Rows:        imageHeight / tileHeight,
	}
	side := isqrt(l.Entries())
	if side*side != l.Entries() || l.Columns != side {
		return AtlasLayout{}, fmt.Errorf("%dx%d entries: %w", l.Columns, l.Rows, ErrAtlasNotSquare)
	}
	return l, nil
}

// Entries is the number of tiles in the sheet.
func (l AtlasLayout) Entries() int {
	return l.Columns * l.Rows
}

// Rect returns the pixel rectangle of entry id.
func (l AtlasLayout) Rect(id uint32) (image.Rectangle, error) {
	if int(id) >= l.Entries() {
		return image.Rectangle{}, fmt.Errorf("entry %d of %d: %w", id, l.Entries(), ErrNoSuchEntry)
	}
	x := int(id) % l.Columns * l.TileWidth
	y := int(id) / l.Columns * l.TileHeight
	return image.Rect(x, y, x+l.TileWidth, y+l.TileHeight), nil
}

// UV returns the normalized texture coordinates of entry id.
func (l AtlasLayout) UV(id uint32) (u0, v0, u1, v1 float32, err error) {
	r, err := l.Rect(id)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	w, h := float32(l.ImageWidth), float32(l.ImageHeight)
	return float32(r.Min.X) / w, float32(r.Min.Y) / h, float32(r.Max.X) / w, float32(r.Max.Y) / h, nil
}

// Check returns an error for the first id without an entry.
func (l AtlasLayout) Check(ids ...uint32) error {
	for _, id := range ids {
		if _, err := l.Rect(id); err != nil {
			return err
		}
	}
	return nil
}

func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// TileAtlas holds the sheet and one sub-image per entry. It is immutable
// after construction.
type TileAtlas struct {
	Layout AtlasLayout
	Sheet  *ebiten.Image
	tiles  []*ebiten.Image
}

// NewTileAtlas slices sheet into tiles.
func NewTileAtlas(sheet *ebiten.Image, tileWidth, tileHeight int) (*TileAtlas, error) {
	b := sheet.Bounds()
	layout, err := NewAtlasLayout(b.Dx(), b.Dy(), tileWidth, tileHeight)
	if err != nil {
		return nil, err
	}
	a := &TileAtlas{
		Layout: layout,
		Sheet:  sheet,
		tiles:  make([]*ebiten.Image, layout.Entries()),
	}
	for i := range a.tiles {
		r, _ := layout.Rect(uint32(i))
		a.tiles[i] = sheet.SubImage(r.Add(b.Min)).(*ebiten.Image)
	}
	return a, nil
}

// Tile returns the sub-image for id.
func (a *TileAtlas) Tile(id uint32) (*ebiten.Image, bool) {
	if int(id) >= len(a.tiles) {
		return nil, false
	}
	return a.tiles[id], true
}
