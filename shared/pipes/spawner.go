package pipes

// Rand is the random source used to pick gap centers. *math/rand/v2.Rand
// satisfies it. Float64 returns values in [0, 1), so gap centers fall in
// [minGapY, maxGapY); the open top end is at most one ulp short of maxGapY.
type Rand interface {
	Float64() float64
}

// SpawnEvent is emitted once per spawn-distance threshold crossing.
type SpawnEvent struct {
	Index  int // zero-based spawn count within the run
	Layout Layout
}

// Spawner is a distance-gated pipe spawner. It is advanced once per tick with
// the current camera X and is not safe for concurrent use.
type Spawner struct {
	cfg    Config
	bounds Bounds
	rng    Rand

	spawning   bool
	prevSpawnX float64
	spawned    int
}

// NewSpawner validates the configuration and returns an idle spawner.
func NewSpawner(cfg Config, bounds Bounds, rng Rand) (*Spawner, error) {
	if err := cfg.Validate(bounds); err != nil {
		return nil, err
	}
	return &Spawner{cfg: cfg, bounds: bounds, rng: rng}, nil
}

// Start switches to spawning, measuring travel from fromX.
func (s *Spawner) Start(fromX float64) {
	s.prevSpawnX = fromX
	s.spawning = true
}

// Stop switches back to idle. Already-placed pipes are unaffected.
func (s *Spawner) Stop() {
	s.spawning = false
}

func (s *Spawner) Spawning() bool { return s.spawning }

// PrevSpawnX returns the camera X at which the last spawn (or Start) happened.
func (s *Spawner) PrevSpawnX() float64 { return s.prevSpawnX }

// Spawned returns how many spawn events have been produced.
func (s *Spawner) Spawned() int { return s.spawned }

func (s *Spawner) Config() Config { return s.cfg }
func (s *Spawner) Bounds() Bounds { return s.bounds }

// Advance observes the current camera X. At most one spawn is produced per
// call, only once the travel since the previous spawn exceeds the spawn gap
// distance. Idle spawners return nil and change nothing.
func (s *Spawner) Advance(currentX float64) []SpawnEvent {
	if !s.spawning {
		return nil
	}
	if currentX-s.prevSpawnX <= s.cfg.SpawnGapDistance {
		return nil
	}

	ev := SpawnEvent{
		Index:  s.spawned,
		Layout: s.place(currentX),
	}
	s.prevSpawnX = currentX
	s.spawned++
	return []SpawnEvent{ev}
}

func (s *Spawner) place(currentX float64) Layout {
	// Spawn just past the right edge of the visible frame.
	spawnX := currentX + s.bounds.HalfWidth + s.cfg.PipeWidth/2

	minY, maxY := s.cfg.GapRange(s.bounds)
	// Half-open: maxY itself is never drawn.
	gapY := minY + s.rng.Float64()*(maxY-minY)

	return s.cfg.Place(s.bounds, spawnX, gapY)
}
