package factory

import (
	"github.com/automoto/flapper/archetypes"
	"github.com/automoto/flapper/assets/animations"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateBird(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	bird := archetypes.Bird.Spawn(ecs)

	r := cfg.Bird.Radius
	px, py, pw, ph := Projection(ecs).RectToPixels(x, y, 2*r, 2*r)
	obj := resolv.NewObject(px, py, pw, ph, tags.ResolvBird)
	obj.SetShape(resolv.NewRectangle(0, 0, pw, ph))
	obj.Data = bird
	components.Object.SetValue(bird, components.ObjectData{Object: obj})

	components.Bird.SetValue(bird, components.BirdData{
		Position: math.NewVec2(x, y),
		Radius:   r,
		Alive:    true,
		Wing:     animations.NewAnimation(0, 2, cfg.Bird.WingTicks, true),
	})
	components.Physics.SetValue(bird, components.PhysicsData{
		Gravity:      cfg.Bird.Gravity,
		MaxFallSpeed: cfg.Bird.MaxFallSpeed,
	})

	addToSpace(ecs, obj)
	return bird
}
