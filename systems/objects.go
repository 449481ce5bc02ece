package systems

import (
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/shared/pipes"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePipeCleanup removes pipes and checkpoints that scrolled past the
// left edge of the screen.
func UpdatePipeCleanup(ecs *ecs.ECS) {
	leftEdge := cameraX(ecs) - cfg.ScreenBounds().HalfWidth

	var toRemove []*donburi.Entry
	collect := func(e *donburi.Entry, rect pipes.Rect) {
		if rect.Right() < leftEdge {
			toRemove = append(toRemove, e)
		}
	}
	components.Pipe.Each(ecs.World, func(e *donburi.Entry) {
		collect(e, components.Pipe.Get(e).Rect)
	})
	components.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		collect(e, components.Checkpoint.Get(e).Rect)
	})

	// Destroy after iteration so Each never sees a removed entry
	spaceEntry, hasSpace := components.Space.First(ecs.World)
	for _, e := range toRemove {
		if hasSpace && e.HasComponent(components.Object) {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
		ecs.World.Remove(e.Entity())
	}
}
