package config

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/automoto/flapper/shared/gamemath"
	"github.com/automoto/flapper/shared/pipes"
)

// Default is the single render layer every entity lives on.
const Default = 0

// Config holds general game configuration
type Config struct {
	Width         int
	Height        int
	TPS           int
	PixelsPerUnit float64 // world units are y-up; one unit is this many pixels
}

// WorldConfig describes the collision space backing an endless run. The
// space spans the screen plus margins and slides forward with the camera.
type WorldConfig struct {
	CellSize       int
	SpaceMargin    float64 // world units above and below the screen kept inside the space
	LeftMargin     float64 // world units behind the screen's left edge kept inside the space
	AheadMargin    float64 // world units past the screen's right edge kept inside the space
	RebaseDistance float64 // world units the origin moves per slide
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowTime float64 // seconds for SmoothDamp to settle
	XOffset    float64 // world units added to the bird's X
	MaxSpeed   float64 // world units per second, 0 = unlimited
}

// BirdConfig contains bird movement values in world units.
type BirdConfig struct {
	StartX       float64
	StartY       float64
	ForwardSpeed float64 // units per second
	Gravity      float64 // units per second squared, pulls down
	FlapSpeed    float64 // vertical speed set by a flap
	MaxFallSpeed float64
	Radius       float64
	HoverAmp     float64 // idle bob before the first flap
	HoverPeriod  float64 // seconds
	MaxTilt      float64 // radians
	WingTicks    int     // ticks per wing frame
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	HitIntensity float64 // pixels
	HitDuration  int     // frames
}

// HUDConfig contains in-game score display values.
type HUDConfig struct {
	Margin          float64
	ScoreColor      color.RGBA
	BestColor       color.RGBA
	HighlightColor  color.RGBA
	HintColor       color.RGBA
	HighlightScale  float32 // peak scale of the new-best pulse
	HighlightTime   float32 // seconds per pulse
	HighlightPulses int
	StartHint       string
}

// ColorsConfig holds the world palette.
type ColorsConfig struct {
	Sky        color.RGBA
	Ground     color.RGBA
	Pipe       color.RGBA
	PipeEdge   color.RGBA
	Bird       color.RGBA
	BirdEye    color.RGBA
	Checkpoint color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// GameOverConfig contains game over overlay configuration values
type GameOverConfig struct {
	OverlayColor      color.RGBA
	PanelColor        color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	NewBestColor      color.RGBA
	DelayFrames       int     // frames between the hit and the overlay
	SlideTime         float32 // seconds for the panel slide-in
	PanelWidth        float64
	PanelHeight       float64
	TitleOffsetY      float64
	MenuStartOffsetY  float64
	MenuItemHeight    float64
	MenuOptions       []string
}

// LeaderboardConfig points the client at the score service.
type LeaderboardConfig struct {
	URL            string
	BoardID        string
	RequestTimeout time.Duration
	TopLimit       int
	PlayerName     string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to game
	DrawHitboxes bool
	Offline      bool // never contact the leaderboard
}

// Global configuration instances
var C *Config
var World WorldConfig
var Pipes pipes.Config
var Camera CameraConfig
var Bird BirdConfig
var ScreenShake ScreenShakeConfig
var HUD HUDConfig
var Colors ColorsConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Leaderboard LeaderboardConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:         640,
		Height:        360,
		TPS:           60,
		PixelsPerUnit: 36,
	}

	World = WorldConfig{
		CellSize:       32,
		SpaceMargin:    2,
		LeftMargin:     3,
		AheadMargin:    3,
		RebaseDistance: 8,
	}

	Pipes = pipes.Config{
		SpawnGapDistance:    5,
		PipeWidth:           1.5,
		PipeGapHeight:       3,
		MaxTopPipeOffset:    0.5,
		MinBottomPipeOffset: 2.5,
		CheckpointWidth:     0.1,
	}

	Camera = CameraConfig{
		FollowTime: 0.1,
		XOffset:    3,
	}

	Bird = BirdConfig{
		StartX:       0,
		StartY:       0.5,
		ForwardSpeed: 3,
		Gravity:      26,
		FlapSpeed:    8,
		MaxFallSpeed: 12,
		Radius:       0.3,
		HoverAmp:     0.15,
		HoverPeriod:  0.9,
		MaxTilt:      0.6,
		WingTicks:    4,
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity: 6.0,
		HitDuration:  14,
	}

	HUD = HUDConfig{
		Margin:          10,
		ScoreColor:      White,
		BestColor:       BrightYellow,
		HighlightColor:  BrightOrange,
		HintColor:       White,
		HighlightScale:  1.6,
		HighlightTime:   0.35,
		HighlightPulses: 3,
		StartHint:       "Press SPACE or click to flap",
	}

	Colors = ColorsConfig{
		Sky:        color.RGBA{R: 90, G: 170, B: 220, A: 255},
		Ground:     color.RGBA{R: 220, G: 200, B: 120, A: 255},
		Pipe:       color.RGBA{R: 80, G: 180, B: 60, A: 255},
		PipeEdge:   color.RGBA{R: 40, G: 110, B: 30, A: 255},
		Bird:       color.RGBA{R: 250, G: 210, B: 40, A: 255},
		BirdEye:    color.RGBA{R: 20, G: 20, B: 20, A: 255},
		Checkpoint: color.RGBA{R: 255, G: 0, B: 255, A: 120},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "FLAPPER",
		TitleY:            70,
		MenuStartY:        120,
		MenuItemHeight:    30,
		MenuItemGap:       10,
	}

	GameOver = GameOverConfig{
		OverlayColor:      BlackOverlay,
		PanelColor:        color.RGBA{R: 30, G: 30, B: 45, A: 230},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		NewBestColor:      BrightGreen,
		DelayFrames:       40,
		SlideTime:         0.4,
		PanelWidth:        260,
		PanelHeight:       220,
		TitleOffsetY:      40,
		MenuStartOffsetY:  110,
		MenuItemHeight:    32,
		MenuOptions:       []string{"Retry", "Leaderboard", "Main Menu"},
	}

	Leaderboard = LeaderboardConfig{
		URL:            "http://localhost:8090",
		BoardID:        "top_scores",
		RequestTimeout: 5 * time.Second,
		TopLimit:       10,
		PlayerName:     "Player",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}

// ScreenBounds returns the visible world extents of a camera centered on y = 0.
func ScreenBounds() pipes.Bounds {
	halfH := float64(C.Height) / 2 / C.PixelsPerUnit
	return pipes.Bounds{
		Top:       halfH,
		Bottom:    -halfH,
		HalfWidth: float64(C.Width) / 2 / C.PixelsPerUnit,
	}
}

// StartProjection maps world units into the pixel grid of a fresh collision
// space. The origin moves as the camera advances; see gamemath.Projection.Rebase.
func StartProjection() gamemath.Projection {
	b := ScreenBounds()
	return gamemath.Projection{
		PixelsPerUnit: C.PixelsPerUnit,
		OriginX:       Bird.StartX - b.HalfWidth - World.LeftMargin,
		OriginY:       b.Top + World.SpaceMargin,
	}
}

// SpaceWidth is the pixel width of the collision space: the screen, both
// margins and the slack left by sliding in RebaseDistance steps.
func SpaceWidth() int {
	b := ScreenBounds()
	return int(math.Ceil((2*b.HalfWidth + World.LeftMargin + World.AheadMargin + World.RebaseDistance) * C.PixelsPerUnit))
}

// SpaceHeight is the pixel height of the collision space.
func SpaceHeight() int {
	b := ScreenBounds()
	return int((b.Top - b.Bottom + 2*World.SpaceMargin) * C.PixelsPerUnit)
}

// Validate rejects configurations the game cannot run with.
func Validate() error {
	if C.Width <= 0 || C.Height <= 0 || C.PixelsPerUnit <= 0 || C.TPS <= 0 {
		return fmt.Errorf("invalid screen config %dx%d @%v px/unit, %d TPS", C.Width, C.Height, C.PixelsPerUnit, C.TPS)
	}
	if err := Pipes.Validate(ScreenBounds()); err != nil {
		return fmt.Errorf("pipes: %w", err)
	}
	if Camera.FollowTime < 0 {
		return fmt.Errorf("camera follow time must not be negative, got %v", Camera.FollowTime)
	}
	if Bird.Gravity <= 0 || Bird.FlapSpeed <= 0 || Bird.MaxFallSpeed <= 0 {
		return fmt.Errorf("bird gravity, flap and fall speeds must be positive")
	}
	if World.CellSize <= 0 || World.RebaseDistance <= 0 {
		return fmt.Errorf("collision space needs positive cell size and rebase distance, got %d px and %v", World.CellSize, World.RebaseDistance)
	}
	if World.LeftMargin < Pipes.PipeWidth || World.AheadMargin < Pipes.PipeWidth {
		return fmt.Errorf("space margins %v/%v must fit a %v wide pipe", World.LeftMargin, World.AheadMargin, Pipes.PipeWidth)
	}
	return nil
}
