package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFlap
	ActionPause
	ActionMute
	ActionDebug
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds device-independent input tuning. Key and button
// bindings live with the input system.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Pointer presses (mouse, touch) count as a flap
	PointerFlaps bool
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		PointerFlaps:   true,
	}
}
