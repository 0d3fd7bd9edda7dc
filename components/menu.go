package components

import (
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/shared/gamemath"
	"github.com/yohamta/donburi"
)

// MenuButton is a clickable rectangle in normalized device coordinates.
type MenuButton struct {
	Label   string
	Rect    gamemath.Rect
	Target  cfg.SceneID
	Hovered bool
}

// MenuData stores the current state of the main menu
type MenuData struct {
	Buttons       []MenuButton
	SelectedIndex int // Keyboard selection; -1 when the mouse took over
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
