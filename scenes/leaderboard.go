package scenes

import (
	"context"
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/network"
	"github.com/automoto/flapper/systems"
	"github.com/automoto/flapper/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LeaderboardScene shows the top scores fetched from the leaderboard service.
type LeaderboardScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	boardUI      *ui.LeaderboardUI
	once         sync.Once
	shouldGoBack bool

	mu             sync.Mutex
	fetchedEntries []network.ScoreEntry
	fetchErr       error
	fetchDone      bool
}

func NewLeaderboardScene(sc SceneChanger, services *Services) *LeaderboardScene {
	return &LeaderboardScene{sceneChanger: sc, services: services}
}

func (s *LeaderboardScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.boardUI.Update()

	// Apply fetch results on the main goroutine
	s.mu.Lock()
	if s.fetchDone {
		entries := s.fetchedEntries
		err := s.fetchErr
		s.fetchDone = false
		s.fetchedEntries = nil
		s.fetchErr = nil
		s.mu.Unlock()

		s.boardUI.SetRefreshing(false)
		if err != nil {
			s.boardUI.SetStatus("Could not reach the leaderboard")
		} else {
			s.boardUI.SetRows(s.rows(entries))
			s.boardUI.SetStatus("")
			if len(entries) == 0 {
				s.boardUI.SetStatus("No scores yet")
			}
		}
	} else {
		s.mu.Unlock()
	}

	if s.shouldGoBack {
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger, s.services))
	}
}

func (s *LeaderboardScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 25, 50, 255})

	if s.ecsWorld == nil {
		return
	}

	s.boardUI.UI.Draw(screen)
}

func (s *LeaderboardScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())

	s.ecsWorld.AddSystem(systems.UpdateAudio)
	s.ecsWorld.AddSystem(systems.UpdateInput)
	s.ecsWorld.AddSystem(s.updateBack)

	s.boardUI = ui.NewLeaderboardUI(
		func() { s.fetchScores() },
		func() { s.shouldGoBack = true },
	)
	s.boardUI.SetBestScore(s.services.bestScore())
	s.boardUI.SetRows(nil)

	// Auto-fetch scores on scene entry
	s.fetchScores()
}

// updateBack returns to the menu on the back action.
func (s *LeaderboardScene) updateBack(e *ecs.ECS) {
	input := systems.GetOrCreateInput(e)
	if systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
		systems.PlaySFX(e, cfg.SoundMenuSelect)
		s.shouldGoBack = true
	}
}

func (s *LeaderboardScene) rows(entries []network.ScoreEntry) []ui.Row {
	var self string
	if s.services.Board != nil {
		self = s.services.Board.Player().ID
	}
	rows := make([]ui.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ui.Row{
			Rank:      e.Rank,
			Name:      e.Name,
			Score:     e.Score,
			Highlight: self != "" && e.PlayerID == self,
		})
	}
	return rows
}

func (s *LeaderboardScene) fetchScores() {
	if s.services.Board == nil {
		s.boardUI.SetStatus("Offline")
		s.boardUI.SetRefreshing(true)
		return
	}

	s.boardUI.SetStatus("Fetching scores...")
	s.boardUI.SetRefreshing(true)

	go s.queryLeaderboard(s.services.Ctx)
}

func (s *LeaderboardScene) queryLeaderboard(ctx context.Context) {
	entries, err := s.services.Board.FetchTopScores(ctx, cfg.Leaderboard.BoardID, cfg.Leaderboard.TopLimit)
	if err != nil {
		log.Printf("[leaderboard] %v", err)
	}

	s.mu.Lock()
	s.fetchedEntries = entries
	s.fetchErr = err
	s.fetchDone = true
	s.mu.Unlock()
}
