package systems

import (
	"math"

	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/systems/factory"
	"github.com/automoto/flapper/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	pipeEdge    = 3 // px
	pipeCapH    = 10
	pipeCapOver = 3 // px the cap sticks out on each side
	groundH     = 4
)

// viewOffset returns the translation from collision-space pixels to screen
// pixels for the current camera, shake included.
func viewOffset(e *ecs.ECS, screen *ebiten.Image) (dx, dy float64, ok bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	camPX, camPY := factory.Projection(e).ToPixels(camera.Position.X, camera.Position.Y)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	dx = float64(width)/2 - camPX + camera.Shake.X
	dy = float64(height)/2 - camPY + camera.Shake.Y
	return dx, dy, true
}

// DrawWorld renders the sky, the pipes and the bird.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Sky)

	dx, dy, ok := viewOffset(e, screen)
	if !ok {
		return
	}
	width := float64(screen.Bounds().Dx())
	proj := factory.Projection(e)

	components.Pipe.Each(e.World, func(entry *donburi.Entry) {
		pipe := components.Pipe.Get(entry)
		x, y, w, h := proj.RectToPixels(pipe.Rect.X, pipe.Rect.Y, pipe.Rect.W, pipe.Rect.H)
		x += dx
		y += dy

		// Viewport culling
		if x+w+pipeCapOver < 0 || x-pipeCapOver > width {
			return
		}
		drawPipe(screen, x, y, w, h, pipe.Upper)
	})

	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, height-groundH, float32(width), groundH, cfg.Colors.Ground, false)

	if birdEntry, ok := tags.Bird.First(e.World); ok {
		bird := components.Bird.Get(birdEntry)
		cx, cy := proj.ToPixels(bird.Position.X, bird.Position.Y)
		drawBird(screen, bird, cx+dx, cy+dy, bird.Radius*cfg.C.PixelsPerUnit)
	}
}

func drawPipe(screen *ebiten.Image, x, y, w, h float64, upper bool) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Colors.PipeEdge, false)
	vector.FillRect(screen, float32(x+pipeEdge), float32(y), float32(w-2*pipeEdge), float32(h), cfg.Colors.Pipe, false)

	// Cap at the open end facing the gap
	capY := y + h - pipeCapH
	if !upper {
		capY = y
	}
	vector.FillRect(screen, float32(x-pipeCapOver), float32(capY),
		float32(w+2*pipeCapOver), pipeCapH, cfg.Colors.PipeEdge, false)
	vector.FillRect(screen, float32(x-pipeCapOver+pipeEdge), float32(capY+pipeEdge),
		float32(w+2*pipeCapOver-2*pipeEdge), pipeCapH-2*pipeEdge, cfg.Colors.Pipe, false)
}

func drawBird(screen *ebiten.Image, bird *components.BirdData, cx, cy, r float64) {
	vector.FillCircle(screen, float32(cx), float32(cy), float32(r), cfg.Colors.Bird, true)

	// Wing: frame 0 up, 1 level, 2 down
	wingY := cy + float64(bird.Wing.Frame()-1)*r/2
	vector.FillRect(screen, float32(cx-r*0.9), float32(wingY-r*0.2), float32(r*0.9), float32(r*0.4), cfg.Colors.PipeEdge, false)

	// Eye and beak follow the tilt; positive tilt points the nose down
	sin, cos := math.Sincos(bird.Tilt)
	eyeX := cx + r*0.45*cos + r*0.35*sin
	eyeY := cy - r*0.35*cos + r*0.45*sin
	vector.FillCircle(screen, float32(eyeX), float32(eyeY), float32(r*0.18), cfg.Colors.BirdEye, true)

	beakX := cx + r*cos
	beakY := cy + r*sin
	vector.FillCircle(screen, float32(beakX), float32(beakY), float32(r*0.3), cfg.Orange, true)
}
