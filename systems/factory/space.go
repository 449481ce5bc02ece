package factory

import (
	"github.com/automoto/flapper/archetypes"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, frame gamemath.Projection, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	components.SpaceFrame.SetValue(space, frame)
	return space
}

// Projection returns the world's current space projection, or the start
// projection when there is no space yet.
func Projection(ecs *ecs.ECS) gamemath.Projection {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		return *components.SpaceFrame.Get(spaceEntry)
	}
	return cfg.StartProjection()
}

// addToSpace registers obj with the world's collision space, if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
