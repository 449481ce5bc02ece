package components

import (
	"github.com/automoto/flapper/assets/animations"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PhysicsData holds y-up velocities in world units per second.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64
}

var Physics = donburi.NewComponentType[PhysicsData]()

// BirdData is the player's world position and flight state.
type BirdData struct {
	Position math.Vec2
	Radius   float64
	Alive    bool
	Tilt     float64 // radians, positive is nose down
	Hover    float64 // seconds spent waiting for the first flap
	Wing     *animations.Animation
}

var Bird = donburi.NewComponentType[BirdData]()
