package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/fonts"
	"github.com/automoto/flapper/shared/session"
	"github.com/automoto/flapper/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles hitbox drawing.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(GetOrCreateInput(e), cfg.ActionDebug).JustPressed {
		cfg.Debug.DrawHitboxes = !cfg.Debug.DrawHitboxes
	}
}

// NewDrawDebug outlines every collision object and prints session state.
func NewDrawDebug(sess *session.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.DrawHitboxes {
			return
		}

		dx, dy, ok := viewOffset(e, screen)
		if !ok {
			return
		}
		width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

		spaceEntry, ok := components.Space.First(e.World)
		if !ok {
			return
		}
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			x := obj.X + dx
			y := obj.Y + dy

			// Cull objects outside viewport
			if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
				continue
			}

			// Determine color based on tags
			var c color.Color = color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPipe) {
				c = color.RGBA{255, 0, 0, 255}
			} else if obj.HasTags(tags.ResolvCheckpoint) {
				c = cfg.Colors.Checkpoint
			} else if obj.HasTags(tags.ResolvBird) {
				c = color.RGBA{0, 0, 255, 255}
			}

			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}

		info := fmt.Sprintf("phase %s  score %d  best %d  objects %d",
			sess.Phase(), sess.Score(), sess.BestScore(), len(space.Objects()))
		if birdEntry, ok := tags.Bird.First(e.World); ok {
			bird := components.Bird.Get(birdEntry)
			info += fmt.Sprintf("  bird (%.2f, %.2f)", bird.Position.X, bird.Position.Y)
		}
		text.Draw(screen, info, fonts.Small.Get(), 4, int(height)-8, cfg.White)
	}
}
