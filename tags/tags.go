package tags

import "github.com/yohamta/donburi"

var (
	Bird       = donburi.NewTag().SetName("Bird")
	Pipe       = donburi.NewTag().SetName("Pipe")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
)

// Resolv tags for collision
const (
	ResolvBird       = "bird"
	ResolvPipe       = "pipe"
	ResolvCheckpoint = "checkpoint"
)
