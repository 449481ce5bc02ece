package components

import (
	"github.com/automoto/flapper/shared/pipes"
	"github.com/yohamta/donburi"
)

// CheckpointData is the trigger between a pipe pair. Passed flips once.
type CheckpointData struct {
	Rect   pipes.Rect
	Index  int
	Passed bool
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
