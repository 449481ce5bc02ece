package systems

import (
	"math"

	"github.com/automoto/flapper/components"
	"github.com/automoto/flapper/config"
	"github.com/automoto/flapper/shared/gamemath"
	"github.com/automoto/flapper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateCamera critically damps the camera toward the bird, offset
// horizontally and pinned to y = 0.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	birdEntry, ok := tags.Bird.First(e.World)
	if !ok {
		return
	}
	bird := components.Bird.Get(birdEntry)

	dt := 1.0 / float64(config.C.TPS)
	target := math2.NewVec2(bird.Position.X+config.Camera.XOffset, 0)

	camera.Position, camera.Velocity = gamemath.SmoothDampVec2(
		camera.Position, target, camera.Velocity,
		config.Camera.FollowTime, config.Camera.MaxSpeed, dt,
	)
}

// cameraX returns the camera's world X, or the bird's start when there is no camera.
func cameraX(e *ecs.ECS) float64 {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return config.Bird.StartX
	}
	return components.Camera.Get(cameraEntry).Position.X
}

// updateScreenShake sets the pixel shake offset and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Shake.X, camera.Shake.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	camera.Shake.X = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Shake.Y = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
