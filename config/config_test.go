package config

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/flapper/shared/pipes"
)

func TestDefaultsValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestScreenBoundsMatchScreen(t *testing.T) {
	b := ScreenBounds()
	if math.Abs(b.Top-5) > 1e-9 || math.Abs(b.Bottom+5) > 1e-9 {
		t.Errorf("Expected vertical bounds [-5, 5], got [%f, %f]", b.Bottom, b.Top)
	}
	if math.Abs(b.HalfWidth*2*C.PixelsPerUnit-float64(C.Width)) > 1e-9 {
		t.Errorf("HalfWidth %f does not cover %d px", b.HalfWidth, C.Width)
	}
}

func TestProjectionKeepsScreenInsideSpace(t *testing.T) {
	p := StartProjection()
	b := ScreenBounds()

	_, top := p.ToPixels(Bird.StartX, b.Top)
	_, bottom := p.ToPixels(Bird.StartX, b.Bottom)
	left, _ := p.ToPixels(Bird.StartX-b.HalfWidth, 0)

	if top <= 0 || bottom >= float64(SpaceHeight()) {
		t.Errorf("screen rows [%f, %f] fall outside space height %d", top, bottom, SpaceHeight())
	}
	if left <= 0 {
		t.Errorf("screen left edge %f falls outside space", left)
	}
}

func TestSpaceCoversLiveWindowAfterSliding(t *testing.T) {
	b := ScreenBounds()
	width := float64(SpaceWidth())
	p := StartProjection()

	// Walk the camera far past where a fixed-width space used to end.
	for camX := Bird.StartX + Camera.XOffset; camX < 1e5; camX += 0.37 {
		p.Rebase(camX-b.HalfWidth-World.LeftMargin, World.RebaseDistance)

		// Oldest live pipe: its right edge is still on screen.
		oldest, _ := p.ToPixels(camX-b.HalfWidth-Pipes.PipeWidth, 0)
		// Newest pipe: spawned just past the right edge.
		newest, _ := p.ToPixels(camX+b.HalfWidth+Pipes.PipeWidth, 0)
		if oldest < 0 || newest > width {
			t.Fatalf("camX=%f: live window [%f, %f] px outside space width %f", camX, oldest, newest, width)
		}
	}
}

func TestSpaceStaysSmall(t *testing.T) {
	cols := SpaceWidth() / World.CellSize
	if cols > 4*C.Width/World.CellSize {
		t.Errorf("Expected a space a few screens wide, got %d columns", cols)
	}
}

func TestValidateRejectsNarrowMargins(t *testing.T) {
	saved := World
	defer func() { World = saved }()

	World.AheadMargin = Pipes.PipeWidth / 2
	if err := Validate(); err == nil {
		t.Error("Expected an error for an ahead margin narrower than a pipe")
	}
}

func TestValidateRejectsInvertedGap(t *testing.T) {
	saved := Pipes
	defer func() { Pipes = saved }()

	Pipes.MinBottomPipeOffset = 7
	err := Validate()
	if !errors.Is(err, pipes.ErrInvalidGapRange) {
		t.Errorf("Expected ErrInvalidGapRange, got %v", err)
	}
}

func TestNextVolumeStep(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0.25},
		{0.75, 1.0},
		{1.0, 0},
		{0.6, 0.75}, // snaps to the closest step first
	}
	for _, tt := range tests {
		if got := NextVolumeStep(tt.in); got != tt.want {
			t.Errorf("NextVolumeStep(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
