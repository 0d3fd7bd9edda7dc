package components

import (
	cfg "github.com/automoto/tilepaste/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod

	// Left stick, -1..1 per axis after the deadzone; y grows up
	AxisX, AxisY float64

	// Cursor in screen pixels and whether the click button went down this frame
	CursorX, CursorY int
	Clicked          bool

	// Frames polled since the owning scene started
	Frames int
}

var Input = donburi.NewComponentType[InputData]()
