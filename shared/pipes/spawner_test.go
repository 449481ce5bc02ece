package pipes

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

// fixedRand always returns the same sample.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func newTestSpawner(t *testing.T, rng Rand) *Spawner {
	t.Helper()
	s, err := NewSpawner(defaultConfig(), Bounds{Top: 5, Bottom: -5, HalfWidth: 8}, rng)
	if err != nil {
		t.Fatalf("NewSpawner failed: %v", err)
	}
	return s
}

func TestNewSpawnerRejectsInvalidConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.PipeGapHeight = 9

	_, err := NewSpawner(cfg, Bounds{Top: 5, Bottom: -5}, fixedRand(0))
	if !errors.Is(err, ErrInvalidGapRange) {
		t.Fatalf("Expected ErrInvalidGapRange, got %v", err)
	}
}

func TestSpawnerIdleDoesNothing(t *testing.T) {
	s := newTestSpawner(t, fixedRand(0.5))

	for x := 0.0; x < 100; x += 7 {
		if evs := s.Advance(x); len(evs) != 0 {
			t.Fatalf("Expected no spawns while idle, got %d at x=%f", len(evs), x)
		}
	}
	if s.PrevSpawnX() != 0 || s.Spawned() != 0 || s.Spawning() {
		t.Errorf("Idle spawner mutated state: prev=%f spawned=%d spawning=%v",
			s.PrevSpawnX(), s.Spawned(), s.Spawning())
	}
}

func TestSpawnerThreshold(t *testing.T) {
	s := newTestSpawner(t, fixedRand(0.5))
	s.Start(0)

	// Exactly the gap distance is not enough; the comparison is strict.
	if evs := s.Advance(5); len(evs) != 0 {
		t.Fatalf("Expected no spawn at exactly the gap distance, got %d", len(evs))
	}

	evs := s.Advance(5.01)
	if len(evs) != 1 {
		t.Fatalf("Expected one spawn past the gap distance, got %d", len(evs))
	}
	if s.PrevSpawnX() != 5.01 {
		t.Errorf("Expected prevSpawnX 5.01, got %f", s.PrevSpawnX())
	}

	l := evs[0].Layout
	wantX := 5.01 + 8 + 1.5/2
	if !almostEqual(l.Top.X, wantX) {
		t.Errorf("Expected spawn X %f, got %f", wantX, l.Top.X)
	}
	// fixedRand(0.5) lands in the middle of [-1, 3].
	if !almostEqual(l.GapY, 1.0) {
		t.Errorf("Expected gapY 1.0, got %f", l.GapY)
	}
}

func TestSpawnerOneSpawnPerLargeJump(t *testing.T) {
	s := newTestSpawner(t, fixedRand(0))
	s.Start(0)

	// A jump covering several gap distances still yields a single spawn.
	if evs := s.Advance(50); len(evs) != 1 {
		t.Fatalf("Expected exactly one spawn, got %d", len(evs))
	}
	if evs := s.Advance(50); len(evs) != 0 {
		t.Fatalf("Expected no spawn without further travel, got %d", len(evs))
	}
}

func TestSpawnerStopAndRestart(t *testing.T) {
	s := newTestSpawner(t, fixedRand(0))
	s.Start(0)
	s.Advance(6)
	s.Stop()

	if evs := s.Advance(100); len(evs) != 0 {
		t.Fatalf("Expected no spawns after Stop, got %d", len(evs))
	}
	if s.PrevSpawnX() != 6 {
		t.Errorf("Stopped spawner changed prevSpawnX to %f", s.PrevSpawnX())
	}

	s.Start(100)
	if evs := s.Advance(104); len(evs) != 0 {
		t.Fatalf("Expected travel to be measured from the restart point")
	}
	if evs := s.Advance(106); len(evs) != 1 {
		t.Fatalf("Expected a spawn after restart, got %d", len(evs))
	}
	if s.Spawned() != 2 {
		t.Errorf("Expected 2 spawns in total, got %d", s.Spawned())
	}
}

func TestSpawnerGapWithinRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	s := newTestSpawner(t, rng)
	minY, maxY := s.Config().GapRange(s.Bounds())
	s.Start(0)

	x := 0.0
	for i := 0; i < 5000; i++ {
		x += 0.37
		for _, ev := range s.Advance(x) {
			if ev.Layout.GapY < minY || ev.Layout.GapY > maxY {
				t.Fatalf("gapY %f outside [%f, %f]", ev.Layout.GapY, minY, maxY)
			}
		}
	}
	if s.Spawned() == 0 {
		t.Fatal("Expected spawns over the run")
	}
}

func TestSpawnerGapRangeEnds(t *testing.T) {
	tests := []struct {
		name   string
		sample float64
		atMax  bool
	}{
		{"lowest sample", 0, false},
		{"highest sample", math.Nextafter(1, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSpawner(t, fixedRand(tt.sample))
			minY, maxY := s.Config().GapRange(s.Bounds())
			s.Start(0)
			evs := s.Advance(100)
			if len(evs) != 1 {
				t.Fatalf("Expected one spawn, got %d", len(evs))
			}

			gapY := evs[0].Layout.GapY
			if gapY < minY || gapY > maxY {
				t.Fatalf("gapY %f outside [%f, %f]", gapY, minY, maxY)
			}
			if !tt.atMax && gapY != minY {
				t.Errorf("Expected gapY %f, got %f", minY, gapY)
			}
			if tt.atMax && maxY-gapY > 1e-9 {
				t.Errorf("Expected gapY within 1e-9 of %f, got %f", maxY, gapY)
			}
		})
	}
}

func TestSpawnerDistanceGating(t *testing.T) {
	steps := []float64{0.05, 0.3, 1, 2.5, 4.9, 7}

	for _, step := range steps {
		s := newTestSpawner(t, fixedRand(0.25))
		s.Start(0)

		// Reference: count how often the distance since the last spawn exceeds the gap.
		expected := 0
		last := 0.0

		got := 0
		for x := step; x < 500; x += step {
			if x-last > s.Config().SpawnGapDistance {
				expected++
				last = x
			}
			got += len(s.Advance(x))
		}

		if got != expected {
			t.Errorf("step %f: expected %d spawns, got %d", step, expected, got)
		}
		if got == 0 {
			t.Errorf("step %f: expected at least one spawn", step)
		}
	}
}

func TestSpawnerIndexes(t *testing.T) {
	s := newTestSpawner(t, fixedRand(0.75))
	s.Start(0)

	idx := 0
	for x := 1.0; x <= 60; x++ {
		for _, ev := range s.Advance(x) {
			if ev.Index != idx {
				t.Errorf("Expected spawn index %d, got %d", idx, ev.Index)
			}
			idx++
		}
	}
}
