package animations

// Animation steps through a range of frame indices, advancing one frame
// every TicksPerFrame updates.
type Animation struct {
	First         int
	Last          int
	TicksPerFrame int
	Loop          bool // wrap to First after Last, otherwise hold Last
	ticks         int
	frame         int
	Finished      bool
}

func (a *Animation) Update() {
	if a.Finished {
		return
	}
	a.ticks++
	if a.ticks < a.TicksPerFrame {
		return
	}
	a.ticks = 0
	if a.frame < a.Last {
		a.frame++
		return
	}
	if a.Loop {
		a.frame = a.First
		return
	}
	a.Finished = true
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.ticks = 0
	a.Finished = false
}

func NewAnimation(first, last, ticksPerFrame int, loop bool) *Animation {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Animation{
		First:         first,
		Last:          last,
		TicksPerFrame: ticksPerFrame,
		Loop:          loop,
		frame:         first,
	}
}
