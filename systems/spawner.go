package systems

import (
	"github.com/automoto/flapper/shared/session"
	"github.com/automoto/flapper/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSpawner feeds the camera X to the session's spawner and builds
// the pipe pairs it emits.
func NewUpdateSpawner(sess *session.Session) ecs.System {
	return func(e *ecs.ECS) {
		for _, ev := range sess.AdvanceSpawner(cameraX(e)) {
			factory.CreatePipePair(e, ev)
		}
	}
}
