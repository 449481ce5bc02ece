package systems

import (
	"context"
	"math"

	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/shared/gamemath"
	"github.com/automoto/flapper/shared/session"
	"github.com/automoto/flapper/systems/factory"
	"github.com/automoto/flapper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateBird moves the bird. Before the first flap it hovers in place;
// the first flap starts the session. After a hit it drops without input.
func NewUpdateBird(ctx context.Context, sess *session.Session) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := tags.Bird.First(e.World)
		if !ok {
			return
		}
		bird := components.Bird.Get(entry)
		physics := components.Physics.Get(entry)
		input := GetOrCreateInput(e)
		dt := 1.0 / float64(cfg.C.TPS)

		flap := GetAction(input, cfg.ActionFlap).JustPressed

		switch sess.Phase() {
		case session.PhaseReady:
			bird.Hover += dt
			bird.Position.Y = cfg.Bird.StartY + cfg.Bird.HoverAmp*math.Sin(2*math.Pi*bird.Hover/cfg.Bird.HoverPeriod)
			if !flap {
				break
			}
			sess.StartGame(cameraX(e))
			bird.Wing.Restart()
			physics.SpeedX = cfg.Bird.ForwardSpeed
			physics.SpeedY = cfg.Bird.FlapSpeed
			PlaySFX(e, cfg.SoundFlap)

		case session.PhasePlaying:
			if flap && bird.Alive {
				physics.SpeedY = cfg.Bird.FlapSpeed
				bird.Wing.Restart()
				PlaySFX(e, cfg.SoundFlap)
			}
			integrateBird(bird, physics, dt)

			b := cfg.ScreenBounds()
			if bird.Position.Y-bird.Radius < b.Bottom || bird.Position.Y+bird.Radius > b.Top {
				killBird(ctx, e, sess, entry, cfg.SoundFall)
			}

		case session.PhaseOver:
			integrateBird(bird, physics, dt)
		}

		if bird.Alive {
			bird.Wing.Update()
		}
		bird.Tilt = gamemath.Clamp(-physics.SpeedY/cfg.Bird.FlapSpeed*cfg.Bird.MaxTilt, -cfg.Bird.MaxTilt, cfg.Bird.MaxTilt)
		syncBirdObject(e, entry, bird)
	}
}

func integrateBird(bird *components.BirdData, physics *components.PhysicsData, dt float64) {
	physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, physics.MaxFallSpeed, dt)
	bird.Position.X += physics.SpeedX * dt
	bird.Position.Y += physics.SpeedY * dt

	// Keep a dead bird inside the collision space once it drops off screen
	floor := cfg.ScreenBounds().Bottom - cfg.World.SpaceMargin + bird.Radius
	if bird.Position.Y < floor {
		bird.Position.Y = floor
		physics.SpeedY = 0
	}
}

// killBird ends the run once. Later hits in the same run are ignored.
func killBird(ctx context.Context, e *ecs.ECS, sess *session.Session, entry *donburi.Entry, sound cfg.SoundID) {
	bird := components.Bird.Get(entry)
	if !bird.Alive {
		return
	}
	bird.Alive = false

	physics := components.Physics.Get(entry)
	physics.SpeedX = 0
	if physics.SpeedY > 0 {
		physics.SpeedY = 0
	}

	sess.EndGame(ctx)
	TriggerScreenShake(e, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)
	PlaySFX(e, sound)
}

// syncBirdObject moves the collision shape to the bird's world position.
func syncBirdObject(e *ecs.ECS, entry *donburi.Entry, bird *components.BirdData) {
	obj := components.Object.Get(entry)
	d := 2 * bird.Radius
	obj.X, obj.Y, _, _ = factory.Projection(e).RectToPixels(bird.Position.X, bird.Position.Y, d, d)
	obj.Update()
}
