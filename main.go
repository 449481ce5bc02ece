package main

import (
	"context"
	"flag"
	"image"
	"log"

	"github.com/automoto/flapper/config"
	"github.com/automoto/flapper/fonts"
	"github.com/automoto/flapper/network"
	"github.com/automoto/flapper/persistence"
	"github.com/automoto/flapper/scenes"
	"github.com/automoto/flapper/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(services *scenes.Services) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, services)
	} else {
		g.scene = scenes.NewMenuScene(g, services)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "Draw hitboxes and session state")
	skipMenu := flag.Bool("skip-menu", false, "Start a run immediately")
	name := flag.String("name", config.Leaderboard.PlayerName, "Leaderboard display name")
	boardURL := flag.String("leaderboard", config.Leaderboard.URL, "Leaderboard service URL")
	offline := flag.Bool("offline", false, "Never contact the leaderboard")
	clearBest := flag.Bool("clear-best", false, "Erase the saved best score and exit")
	flag.Parse()

	config.Debug.DrawHitboxes = *debug
	config.Debug.SkipMenu = *skipMenu
	config.Debug.Offline = *offline
	config.Leaderboard.URL = *boardURL
	config.Leaderboard.PlayerName = *name

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	storage, err := persistence.Open("flapper")
	if err != nil {
		log.Printf("[persistence] running without saves: %v", err)
	}

	if *clearBest {
		if err := storage.ClearBestScore(); err != nil {
			log.Fatalf("Could not clear best score: %v", err)
		}
		return
	}

	if saved, err := storage.LoadSettings(); err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
	} else if saved != nil {
		systems.SetSFXVolume(saved.SFXVolume)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services := &scenes.Services{Ctx: ctx, Storage: storage}
	if !config.Debug.Offline {
		deviceID, err := storage.DeviceID()
		if err != nil {
			log.Printf("[persistence] no device id, playing offline: %v", err)
		} else {
			services.Board = network.NewLeaderboardClient(
				config.Leaderboard.URL, config.Leaderboard.PlayerName, deviceID, config.Leaderboard.RequestTimeout,
			)
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(services)); err != nil {
		log.Fatal(err)
	}
}
