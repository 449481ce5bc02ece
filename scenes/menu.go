package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/persistence"
	"github.com/automoto/flapper/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, services *Services) *MenuScene {
	return &MenuScene{sceneChanger: sc, services: services}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(ms.sceneChanger, ms.services)
	}
	createLeaderboardScene := func() interface{} {
		return NewLeaderboardScene(ms.sceneChanger, ms.services)
	}
	saveVolume := func(volume float64) {
		err := ms.services.Storage.SaveSettings(persistence.Settings{SFXVolume: volume, Muted: volume == 0})
		if err != nil {
			log.Printf("[persistence] could not save settings: %v", err)
		}
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, saveVolume, createWorldScene, createLeaderboardScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	systems.GetOrCreateMenu(ms.ecs).BestScore = ms.services.bestScore()
}
