package systems

import (
	"strings"

	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionFlap: {
		Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW, ebiten.KeyX},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	cfg.ActionPause: {
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		// Start / Options button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
	cfg.ActionMute: {
		Keys: []ebiten.Key{ebiten.KeyM},
	},
	cfg.ActionDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
	cfg.ActionMenuUp: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	cfg.ActionMenuDown: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	},
	cfg.ActionMenuSelect: {
		Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	cfg.ActionMenuBack: {
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
		// B / Circle button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightRight,
		},
	},
}

// Reusable slices to avoid per-frame allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the Input component.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range bindings {
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

	// Left stick drives menu navigation
	up, down, stickGpID := getAnalogStickState(gamepadIDs)
	if up {
		input.Current[cfg.ActionMenuUp] = true
		gamepadUsed = true
		activeGamepadID = stickGpID
	}
	if down {
		input.Current[cfg.ActionMenuDown] = true
		gamepadUsed = true
		activeGamepadID = stickGpID
	}

	pointerUsed := false
	if cfg.Input.PointerFlaps && pointerPressed() {
		input.Current[cfg.ActionFlap] = true
		pointerUsed = true
	}

	switch {
	case gamepadUsed:
		input.LastInputMethod = getControllerType(activeGamepadID)
	case pointerUsed:
		input.LastInputMethod = components.InputPointer
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

func pointerPressed() bool {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	return len(touchIDs) > 0
}

// PointerJustPressed reports a fresh click or tap this frame.
func PointerJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
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

// getAnalogStickState reads the vertical left stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
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
