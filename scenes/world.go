package scenes

import (
	"image/color"
	"math/rand/v2"
	"sync"
	"time"

	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/shared/pipes"
	"github.com/automoto/flapper/shared/session"
	"github.com/automoto/flapper/systems"
	"github.com/automoto/flapper/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene is one run: the bird, the pipes and the score session.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	session      *session.Session
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, services *Services) *WorldScene {
	return &WorldScene{sceneChanger: sc, services: services}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	// Leaderboard results arrive on other goroutines; apply them first
	ws.session.Update()
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	// Generate sounds up front so the first flap does not stall
	systems.PreloadAllSFX()

	seed := uint64(time.Now().UnixNano())
	spawner, err := pipes.NewSpawner(cfg.Pipes, cfg.ScreenBounds(), rand.New(rand.NewPCG(seed, seed>>1)))
	if err != nil {
		panic("invalid pipe config: " + err.Error())
	}

	e := ecs.NewECS(donburi.NewWorld())
	ctx := ws.services.Ctx

	ws.session = session.New(session.Options{
		HUD:     systems.NewHUD(e),
		Store:   ws.services.Storage,
		Board:   ws.services.leaderboard(),
		BoardID: cfg.Leaderboard.BoardID,
		Spawner: spawner,
	})
	sess := ws.session

	createWorldScene := func() interface{} {
		return NewWorldScene(ws.sceneChanger, ws.services)
	}
	createLeaderboardScene := func() interface{} {
		return NewLeaderboardScene(ws.sceneChanger, ws.services)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(ws.sceneChanger, ws.services)
	}

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.NewUpdatePause(sess))

	// Game systems wrapped with pause checks. The spawner reads the camera
	// after it has followed the bird this tick.
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateBird(ctx, sess)))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpaceOrigin))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateSpawner(sess)))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateCollisions(ctx, sess)))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePipeCleanup))

	e.AddSystem(systems.UpdateHUD)
	e.AddSystem(systems.NewUpdateGameOver(sess, ws.sceneChanger, createWorldScene, createLeaderboardScene, createMenuScene))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.NewDrawDebug(sess))
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawGameOver)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = e

	factory.CreateSpace(e, cfg.StartProjection(), cfg.SpaceWidth(), cfg.SpaceHeight(), cfg.World.CellSize, cfg.World.CellSize)

	// Camera starts where it would settle so the first frames do not pan
	factory.CreateCamera(e, cfg.Bird.StartX+cfg.Camera.XOffset, 0)
	factory.CreateBird(e, cfg.Bird.StartX, cfg.Bird.StartY)

	sess.Init(ctx)
}
