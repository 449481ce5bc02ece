package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverLeaderboard
	GameOverMenu
)

// GameOverData stores the state of the game over overlay
type GameOverData struct {
	SelectedOption GameOverOption
	Delay          int // frames left before the overlay appears
	Visible        bool
	Slide          *gween.Tween
	OffsetY        float32 // current slide offset in pixels
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()
