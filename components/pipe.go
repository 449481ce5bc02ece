package components

import (
	"github.com/automoto/flapper/shared/pipes"
	"github.com/yohamta/donburi"
)

// PipeData is one obstacle of a spawned pair.
type PipeData struct {
	Rect  pipes.Rect
	Upper bool
	Index int // spawn index shared by the pair and its checkpoint
}

var Pipe = donburi.NewComponentType[PipeData]()
