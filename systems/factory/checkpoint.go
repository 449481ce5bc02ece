package factory

import (
	"github.com/automoto/flapper/archetypes"
	"github.com/automoto/flapper/components"
	"github.com/automoto/flapper/shared/pipes"
	"github.com/automoto/flapper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates the scoring trigger between a pipe pair
func CreateCheckpoint(ecs *ecs.ECS, rect pipes.Rect, index int) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	obj := newRectObject(ecs, rect, tags.ResolvCheckpoint)
	obj.Data = checkpoint
	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})

	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		Rect:  rect,
		Index: index,
	})

	addToSpace(ecs, obj)
	return checkpoint
}

// newRectObject builds a collision object covering a centered world rect.
func newRectObject(ecs *ecs.ECS, rect pipes.Rect, tag string) *resolv.Object {
	x, y, w, h := Projection(ecs).RectToPixels(rect.X, rect.Y, rect.W, rect.H)
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}
