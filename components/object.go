package components

import (
	"github.com/automoto/flapper/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its collision shape. The shape lives in
// pixel space; see SpaceFrame.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

// SpaceFrame is the projection from world units into the space's pixels. Its
// origin slides forward with the camera.
var SpaceFrame = donburi.NewComponentType[gamemath.Projection]()
