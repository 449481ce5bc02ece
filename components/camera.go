package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the camera center in world units. Velocity is owned by the
// smoothing step across ticks; Shake is a pixel offset applied only when drawing.
type CameraData struct {
	Position math.Vec2
	Velocity math.Vec2
	Shake    math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
