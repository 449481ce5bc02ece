package systems

import (
	"fmt"
	"os"

	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// saveVolume is called after the sound option changes the volume.
func NewUpdateMenu(
	sceneChanger SceneChanger,
	saveVolume func(volume float64),
	createWorldScene func() interface{},
	createLeaderboardScene func() interface{},
) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := GetOrCreateInput(e)

		// Navigate menu with wrap-around
		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		// Handle selection
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)

			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuPlay:
				sceneChanger.ChangeScene(createWorldScene())
			case components.MainMenuLeaderboard:
				sceneChanger.ChangeScene(createLeaderboardScene())
			case components.MainMenuSound:
				volume := cfg.NextVolumeStep(GetSFXVolume())
				SetSFXVolume(volume)
				if saveVolume != nil {
					saveVolume(volume)
				}
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)
	drawCentered(screen, fmt.Sprintf("Best: %d", menu.BestScore), fonts.Regular.Get(),
		int(cfg.Menu.TitleY)+24, cfg.HUD.BestColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		// Determine color based on selection
		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := getOptionLabel(option)
		x := int((width - float64(textWidth(label, menuFont))) / 2)
		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	// Draw navigation hint at bottom based on input method
	input := GetOrCreateInput(e)
	drawCentered(screen, getMenuHint(input.LastInputMethod), fonts.Small.Get(), int(height)-12, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select   M: Mute"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuPlay:
		return "Play"
	case components.MainMenuLeaderboard:
		return "Leaderboard"
	case components.MainMenuSound:
		return fmt.Sprintf("Sound: %d%%", int(GetSFXVolume()*100+0.5))
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		visibleOptions := []components.MainMenuOption{
			components.MainMenuPlay,
			components.MainMenuLeaderboard,
			components.MainMenuSound,
			components.MainMenuExit,
		}

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex:  0,
			VisibleOptions: visibleOptions,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
