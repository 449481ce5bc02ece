package systems

import (
	"fmt"

	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// HUD relays session notifications into the HUD component.
type HUD struct {
	ecs *ecs.ECS
}

func NewHUD(e *ecs.ECS) *HUD {
	return &HUD{ecs: e}
}

func (h *HUD) data() *components.HUDData {
	return GetOrCreateHUD(h.ecs)
}

func (h *HUD) SetScore(score int) { h.data().Score = score }

func (h *HUD) SetBestScore(best int) { h.data().Best = best }

func (h *HUD) StartGame() { h.data().Started = true }

func (h *HUD) EndGame() { h.data().Ended = true }

// HighlightScores pulses the score text a few times after a new best.
func (h *HUD) HighlightScores() {
	hud := h.data()
	hud.NewBest = true

	peak := cfg.HUD.HighlightScale
	half := cfg.HUD.HighlightTime / 2
	var tweens []*gween.Tween
	for i := 0; i < cfg.HUD.HighlightPulses; i++ {
		tweens = append(tweens,
			gween.New(1, peak, half, ease.OutQuad),
			gween.New(peak, 1, half, ease.InQuad),
		)
	}
	hud.Highlight = gween.NewSequence(tweens...)
}

// UpdateHUD advances the highlight pulse.
func UpdateHUD(e *ecs.ECS) {
	hud := GetOrCreateHUD(e)
	if hud.Highlight == nil {
		hud.Scale = 1
		return
	}
	scale, _, done := hud.Highlight.Update(1.0 / float32(cfg.C.TPS))
	hud.Scale = scale
	if done {
		hud.Highlight = nil
		hud.Scale = 1
	}
}

// DrawHUD renders the score, the best score and the start hint.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := GetOrCreateHUD(e)
	margin := cfg.HUD.Margin

	scoreColor := cfg.HUD.ScoreColor
	if hud.NewBest {
		scoreColor = cfg.HUD.HighlightColor
	}
	drawScaled(screen, fmt.Sprintf("%d", hud.Score), fonts.Score.Get(),
		float64(cfg.C.Width)/2, margin+32, hud.Scale, scoreColor)

	best := fmt.Sprintf("BEST %d", hud.Best)
	text.Draw(screen, best, fonts.Regular.Get(), int(margin), int(margin)+14, cfg.HUD.BestColor)

	if !hud.Started {
		drawCentered(screen, cfg.HUD.StartHint, fonts.Regular.Get(), cfg.C.Height*3/4, cfg.HUD.HintColor)
	}
}

// GetOrCreateHUD returns the singleton HUD component, creating if needed.
func GetOrCreateHUD(e *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.HUD))
		components.HUD.SetValue(entry, components.HUDData{Scale: 1})
	}
	return components.HUD.Get(entry)
}
