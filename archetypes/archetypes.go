package archetypes

import (
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Bird = newArchetype(
		tags.Bird,
		components.Bird,
		components.Physics,
		components.Object,
	)
	Pipe = newArchetype(
		tags.Pipe,
		components.Pipe,
		components.Object,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
		components.SpaceFrame,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
