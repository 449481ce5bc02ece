package systems

import (
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/fonts"
	"github.com/automoto/flapper/shared/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause toggles pause while a run is in progress.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func NewUpdatePause(sess *session.Session) ecs.System {
	return func(ecs *ecs.ECS) {
		pause := GetOrCreatePause(ecs)
		input := GetOrCreateInput(ecs)

		// Nothing to pause before the first flap or after the hit
		if !sess.Playing() {
			pause.IsPaused = false
			return
		}

		if GetAction(input, cfg.ActionPause).JustPressed {
			pause.IsPaused = !pause.IsPaused
			PlaySFX(ecs, cfg.SoundMenuSelect)
		}
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)

	drawCentered(screen, "PAUSED", fonts.Title.Get(), int(height/2), cfg.White)

	input := GetOrCreateInput(ecs)
	drawCentered(screen, getPauseHint(input.LastInputMethod), fonts.Small.Get(), int(height)-12, cfg.White)
}

// getPauseHint returns the appropriate resume hint for the input device
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Options: Resume"
	case components.InputXbox:
		return "Start: Resume"
	}
	return "Esc / P: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
