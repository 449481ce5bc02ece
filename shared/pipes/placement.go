package pipes

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGapRange is returned when the configured offsets leave no room for the gap.
	ErrInvalidGapRange = errors.New("pipes: gap range is empty (min gap Y exceeds max gap Y)")
	// ErrInvalidConfig is returned for non-positive pipe dimensions or a negative spawn distance.
	ErrInvalidConfig = errors.New("pipes: invalid configuration")
)

// Config holds the tunables for pipe placement. All values are in world units.
type Config struct {
	SpawnGapDistance    float64 // horizontal travel between spawns
	PipeWidth           float64
	PipeGapHeight       float64
	MaxTopPipeOffset    float64 // minimum visible top pipe length
	MinBottomPipeOffset float64 // minimum visible bottom pipe length
	CheckpointWidth     float64
}

// Bounds describes the visible frame in world space.
type Bounds struct {
	Top       float64
	Bottom    float64
	HalfWidth float64
}

// Rect is an axis-aligned box described by its center and size (y-up).
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Top() float64 { return r.Y + r.H/2 }
func (r Rect) Bottom() float64 { return r.Y - r.H/2 }
func (r Rect) Left() float64 { return r.X - r.W/2 }
func (r Rect) Right() float64 { return r.X + r.W/2 }

// TouchesCircle reports whether the circle at (cx, cy) with radius r
// overlaps the rect. Touching edges count.
func (r Rect) TouchesCircle(cx, cy, radius float64) bool {
	nx := min(max(cx, r.Left()), r.Right())
	ny := min(max(cy, r.Bottom()), r.Top())
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= radius*radius
}

// Layout is one obstacle pair plus the checkpoint between them.
type Layout struct {
	GapY       float64
	Top        Rect
	Bottom     Rect
	Checkpoint Rect
}

// GapRange returns the valid interval for the gap center.
func (c Config) GapRange(b Bounds) (minY, maxY float64) {
	half := c.PipeGapHeight / 2
	minY = b.Bottom + c.MinBottomPipeOffset + half
	maxY = b.Top - c.MaxTopPipeOffset - half
	return minY, maxY
}

// Validate checks the configuration against the visible frame.
func (c Config) Validate(b Bounds) error {
	if c.PipeWidth <= 0 || c.PipeGapHeight <= 0 {
		return fmt.Errorf("%w: pipe width %.2f and gap height %.2f must be positive",
			ErrInvalidConfig, c.PipeWidth, c.PipeGapHeight)
	}
	if c.SpawnGapDistance < 0 || c.CheckpointWidth < 0 {
		return fmt.Errorf("%w: spawn distance %.2f and checkpoint width %.2f must not be negative",
			ErrInvalidConfig, c.SpawnGapDistance, c.CheckpointWidth)
	}
	if b.Top <= b.Bottom {
		return fmt.Errorf("%w: screen top %.2f is not above bottom %.2f", ErrInvalidConfig, b.Top, b.Bottom)
	}
	minY, maxY := c.GapRange(b)
	if minY > maxY {
		return fmt.Errorf("%w: [%.2f, %.2f]", ErrInvalidGapRange, minY, maxY)
	}
	return nil
}

// Place computes the obstacle pair and checkpoint for a given spawn X and gap center.
func (c Config) Place(b Bounds, spawnX, gapY float64) Layout {
	half := c.PipeGapHeight / 2

	topOffset := gapY + half
	topHeight := b.Top - topOffset

	bottomOffset := gapY - half
	bottomHeight := bottomOffset - b.Bottom

	return Layout{
		GapY: gapY,
		Top: Rect{
			X: spawnX,
			Y: topOffset + topHeight/2,
			W: c.PipeWidth,
			H: topHeight,
		},
		Bottom: Rect{
			X: spawnX,
			Y: bottomOffset - bottomHeight/2,
			W: c.PipeWidth,
			H: bottomHeight,
		},
		Checkpoint: Rect{
			X: spawnX,
			Y: gapY,
			W: c.CheckpointWidth,
			H: topOffset - bottomOffset,
		},
	}
}
