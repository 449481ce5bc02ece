package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData mirrors what the session has told the HUD.
type HUDData struct {
	Score     int
	Best      int
	Started   bool
	Ended     bool
	NewBest   bool
	Highlight *gween.Sequence
	Scale     float32 // score text scale driven by Highlight
}

var HUD = donburi.NewComponentType[HUDData]()
