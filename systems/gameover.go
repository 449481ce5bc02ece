package systems

import (
	"fmt"

	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/fonts"
	"github.com/automoto/flapper/shared/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver shows the game over panel a moment after the run ends and
// handles its menu.
func NewUpdateGameOver(
	sess *session.Session,
	sceneChanger SceneChanger,
	createWorldScene func() interface{},
	createLeaderboardScene func() interface{},
	createMenuScene func() interface{},
) ecs.System {
	return func(e *ecs.ECS) {
		if sess.Phase() != session.PhaseOver {
			return
		}
		gameOver := GetOrCreateGameOver(e)

		if !gameOver.Visible {
			if gameOver.Delay > 0 {
				gameOver.Delay--
				return
			}
			gameOver.Visible = true
			gameOver.OffsetY = float32(cfg.C.Height)
			gameOver.Slide = gween.New(float32(cfg.C.Height), 0, cfg.GameOver.SlideTime, ease.OutBack)
		}

		if gameOver.Slide != nil {
			offset, done := gameOver.Slide.Update(1.0 / float32(cfg.C.TPS))
			gameOver.OffsetY = offset
			if !done {
				return
			}
			gameOver.Slide = nil
		}

		input := GetOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		// Handle selection
		if GetAction(input, cfg.ActionMenuSelect).JustPressed || PointerJustPressed() {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createWorldScene())
			case components.GameOverLeaderboard:
				sceneChanger.ChangeScene(createLeaderboardScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawGameOver renders the game over panel sliding in over the world
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)
	if !gameOver.Visible {
		return
	}
	hud := GetOrCreateHUD(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.OverlayColor, false)

	panelX := (width - cfg.GameOver.PanelWidth) / 2
	panelY := (height-cfg.GameOver.PanelHeight)/2 + float64(gameOver.OffsetY)
	vector.FillRect(screen, float32(panelX), float32(panelY),
		float32(cfg.GameOver.PanelWidth), float32(cfg.GameOver.PanelHeight), cfg.GameOver.PanelColor, false)

	titleY := int(panelY + cfg.GameOver.TitleOffsetY)
	drawCentered(screen, "GAME OVER", fonts.Title.Get(), titleY, cfg.GameOver.TitleColor)

	scoreLine := fmt.Sprintf("Score %d   Best %d", hud.Score, hud.Best)
	drawCentered(screen, scoreLine, fonts.Regular.Get(), titleY+28, cfg.GameOver.TextColorNormal)
	if hud.NewBest {
		drawCentered(screen, "NEW BEST!", fonts.Bold.Get(), titleY+50, cfg.GameOver.NewBestColor)
	}

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := panelY + cfg.GameOver.MenuStartOffsetY + float64(i)*cfg.GameOver.MenuItemHeight

		// Determine color based on selection
		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		x := int((width - float64(textWidth(option, menuFont))) / 2)
		text.Draw(screen, option, menuFont, x, int(y), textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
			Delay:          cfg.GameOver.DelayFrames,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
