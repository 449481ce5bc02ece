package factory

import (
	"github.com/automoto/flapper/archetypes"
	"github.com/automoto/flapper/components"
	"github.com/automoto/flapper/shared/pipes"
	"github.com/automoto/flapper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePipe(ecs *ecs.ECS, rect pipes.Rect, upper bool, index int) *donburi.Entry {
	pipe := archetypes.Pipe.Spawn(ecs)

	obj := newRectObject(ecs, rect, tags.ResolvPipe)
	obj.Data = pipe
	components.Object.SetValue(pipe, components.ObjectData{Object: obj})

	components.Pipe.SetValue(pipe, components.PipeData{
		Rect:  rect,
		Upper: upper,
		Index: index,
	})

	addToSpace(ecs, obj)
	return pipe
}

// CreatePipePair instantiates the three objects of one spawn event.
func CreatePipePair(ecs *ecs.ECS, ev pipes.SpawnEvent) {
	CreatePipe(ecs, ev.Layout.Top, true, ev.Index)
	CreatePipe(ecs, ev.Layout.Bottom, false, ev.Index)
	CreateCheckpoint(ecs, ev.Layout.Checkpoint, ev.Index)
}
