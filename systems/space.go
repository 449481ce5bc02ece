package systems

import (
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpaceOrigin slides the collision space forward once the camera has
// moved a full RebaseDistance past its origin. Every object shifts left by the
// same number of pixels, so the space only ever covers the screen plus margins.
// Runs after the camera and before anything that adds or checks objects.
func UpdateSpaceOrigin(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	frame := components.SpaceFrame.Get(spaceEntry)

	leftX := cameraX(e) - cfg.ScreenBounds().HalfWidth - cfg.World.LeftMargin
	shift := frame.Rebase(leftX, cfg.World.RebaseDistance)
	if shift == 0 {
		return
	}

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		obj.X -= shift
		obj.Update()
	})
}
