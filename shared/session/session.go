package session

import (
	"context"
	"log"
	"sync"

	"github.com/automoto/flapper/shared/pipes"
)

// HUD receives fire-and-forget score notifications.
type HUD interface {
	SetScore(score int)
	SetBestScore(best int)
	StartGame()
	EndGame()
	HighlightScores()
}

// Store persists the best score across sessions.
type Store interface {
	LoadBestScore() (int, error)
	SaveBestScore(best int) error
}

// Player is the identity returned by the leaderboard service.
type Player struct {
	ID   string
	Name string
}

// Leaderboard is the identity/leaderboard capability. Results are delivered
// through the done callbacks, possibly on another goroutine.
type Leaderboard interface {
	Authenticated() bool
	Authenticate(ctx context.Context, done func(Player, error))
	ReportScore(ctx context.Context, boardID string, score int, done func(error))
	LoadPlayerScore(ctx context.Context, boardID string, done func(score int, err error))
}

// Phase is the lifecycle of a single run.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// Options wires a Session to its collaborators. Board may be nil for offline play.
type Options struct {
	HUD     HUD
	Store   Store
	Board   Leaderboard
	BoardID string
	Spawner *pipes.Spawner
}

// Session owns the score state of one run and drives the pipe spawner.
// All methods must be called from the game goroutine.
type Session struct {
	hud     HUD
	store   Store
	board   Leaderboard
	boardID string
	spawner *pipes.Spawner

	phase Phase
	score int
	best  int

	mu      sync.Mutex
	pending []func()
}

// New creates a session in the ready phase.
func New(opts Options) *Session {
	return &Session{
		hud:     opts.HUD,
		store:   opts.Store,
		board:   opts.Board,
		boardID: opts.BoardID,
		spawner: opts.Spawner,
	}
}

// Init loads the locally persisted best score and asks the leaderboard for
// the player's remote best. Remote failures leave the local value in place.
func (s *Session) Init(ctx context.Context) {
	if s.store != nil {
		best, err := s.store.LoadBestScore()
		if err != nil {
			log.Printf("[session] could not load best score: %v", err)
		} else if best > s.best {
			s.best = best
		}
	}
	s.hud.SetBestScore(s.best)

	if s.board == nil {
		return
	}
	if s.board.Authenticated() {
		s.loadRemoteBest(ctx)
		return
	}
	s.board.Authenticate(ctx, func(p Player, err error) {
		s.enqueue(func() {
			if err != nil {
				log.Printf("[session] authentication failed: %v", err)
				return
			}
			log.Printf("[session] authenticated as %q", p.Name)
			s.loadRemoteBest(ctx)
		})
	})
}

func (s *Session) loadRemoteBest(ctx context.Context) {
	s.board.LoadPlayerScore(ctx, s.boardID, func(score int, err error) {
		s.enqueue(func() {
			if err != nil {
				log.Printf("[session] could not load leaderboard score: %v", err)
				return
			}
			if score > s.best {
				s.best = score
				s.hud.SetBestScore(s.best)
				s.storeBestScore()
			}
		})
	})
}

// storeBestScore writes the best score locally. Failures are logged only.
func (s *Session) storeBestScore() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveBestScore(s.best); err != nil {
		log.Printf("[session] could not save best score: %v", err)
	}
}

// enqueue queues fn to run on the next Update. Safe from any goroutine.
func (s *Session) enqueue(fn func()) {
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

// Update applies leaderboard results that arrived since the last call.
func (s *Session) Update() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

// StartGame begins the run and starts spawning, measuring travel from fromX.
func (s *Session) StartGame(fromX float64) {
	if s.phase != PhaseReady {
		return
	}
	s.phase = PhasePlaying
	s.hud.StartGame()
	if s.spawner != nil {
		s.spawner.Start(fromX)
	}
}

// AddScore awards one point for a passed checkpoint.
func (s *Session) AddScore() {
	if s.phase != PhasePlaying {
		return
	}
	s.score++
	s.hud.SetScore(s.score)
}

// EndGame stops spawning and records a new best score if one was reached.
// Calls after the first are ignored.
func (s *Session) EndGame(ctx context.Context) {
	if s.phase != PhasePlaying {
		return
	}
	s.phase = PhaseOver
	if s.spawner != nil {
		s.spawner.Stop()
	}
	s.hud.EndGame()

	if s.score <= s.best {
		return
	}
	s.best = s.score
	s.hud.SetBestScore(s.best)
	s.hud.HighlightScores()
	s.saveBestScore(ctx)
}

func (s *Session) saveBestScore(ctx context.Context) {
	s.storeBestScore()

	if s.board == nil || !s.board.Authenticated() {
		return
	}
	best := s.best
	s.board.ReportScore(ctx, s.boardID, best, func(err error) {
		if err != nil {
			log.Printf("[session] could not report score %d: %v", best, err)
		}
	})
}

// AdvanceSpawner feeds the current camera X to the spawner.
func (s *Session) AdvanceSpawner(currentX float64) []pipes.SpawnEvent {
	if s.spawner == nil {
		return nil
	}
	return s.spawner.Advance(currentX)
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Playing() bool { return s.phase == PhasePlaying }
func (s *Session) Score() int { return s.score }
func (s *Session) BestScore() int { return s.best }
