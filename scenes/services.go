package scenes

import (
	"context"

	"github.com/automoto/flapper/network"
	"github.com/automoto/flapper/persistence"
	"github.com/automoto/flapper/shared/session"
)

// Services are the long-lived collaborators every scene shares.
type Services struct {
	Ctx     context.Context // cancelled when the game exits
	Storage *persistence.Storage
	Board   *network.LeaderboardClient // nil when playing offline
}

// leaderboard returns Board as the session capability, or nil when offline.
func (s *Services) leaderboard() session.Leaderboard {
	if s.Board == nil {
		return nil
	}
	return s.Board
}

func (s *Services) bestScore() int {
	best, err := s.Storage.LoadBestScore()
	if err != nil {
		return 0
	}
	return best
}
