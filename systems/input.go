package systems

import (
	"strings"

	"github.com/automoto/tilepaste/components"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/shared/grid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.AxisX, input.AxisY = 0, 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	if x, y, gpID, ok := getAnalogStick(gamepadIDs); ok {
		input.AxisX, input.AxisY = x, y
		gamepadUsed = true
		activeGamepadID = gpID
	}

	input.CursorX, input.CursorY = ebiten.CursorPosition()
	input.Clicked = inpututil.IsMouseButtonJustPressed(cfg.Input.ClickButton)

	// Keys still held from the previous scene are not new presses
	if input.Frames == 0 {
		input.Previous = input.Current
		input.Clicked = false
	}
	input.Frames++

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStick reads the left stick of the first gamepad outside the
// deadzone. Vertical is flipped so up is positive, matching world cells.
func getAnalogStick(gamepads []ebiten.GamepadID) (x, y float64, gpID ebiten.GamepadID, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -deadzone || h > deadzone {
			x = h
			ok = true
		}
		if v < -deadzone || v > deadzone {
			y = -v
			ok = true
		}
		if ok {
			return x, y, id, true
		}
	}
	return 0, 0, 0, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var moveActions = [...]struct {
	action cfg.ActionID
	dir    grid.Direction
}{
	{cfg.ActionMoveUp, grid.Up},
	{cfg.ActionMoveDown, grid.Down},
	{cfg.ActionMoveLeft, grid.Left},
	{cfg.ActionMoveRight, grid.Right},
}

// MovementIntent turns this frame's input into a movement request. Discrete
// steps fire on the press edge; the axes follow held keys or the stick.
func MovementIntent(input *components.InputData) grid.Intent {
	var in grid.Intent
	for _, m := range moveActions {
		a := GetAction(input, m.action)
		if a.JustPressed {
			in.Steps = append(in.Steps, m.dir)
		}
		if a.Pressed {
			dx, dy := m.dir.Delta()
			in.AxisX += float64(dx)
			in.AxisY += float64(dy)
		}
	}
	if in.AxisX == 0 && in.AxisY == 0 {
		in.AxisX, in.AxisY = input.AxisX, input.AxisY
	}
	return in
}
