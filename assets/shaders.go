package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// CutoutShader draws atlas tiles, discarding zero-alpha texels
	CutoutShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	cutoutSrc, err := shaderFS.ReadFile("shaders/cutout.kage")
	if err != nil {
		return err
	}
	CutoutShader, err = ebiten.NewShader(cutoutSrc)
	if err != nil {
		return err
	}

	return nil
}
