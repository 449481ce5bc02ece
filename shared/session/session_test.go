package session

import (
	"context"
	"errors"
	"testing"

	"github.com/automoto/flapper/shared/pipes"
)

type fakeHUD struct {
	score, best int
	started     int
	ended       int
	highlights  int
}

func (h *fakeHUD) SetScore(score int) { h.score = score }
func (h *fakeHUD) SetBestScore(best int) { h.best = best }
func (h *fakeHUD) StartGame() { h.started++ }
func (h *fakeHUD) EndGame() { h.ended++ }
func (h *fakeHUD) HighlightScores() { h.highlights++ }

type fakeStore struct {
	best    int
	loadErr error
	saveErr error
	saves   []int
}

func (s *fakeStore) LoadBestScore() (int, error) { return s.best, s.loadErr }

func (s *fakeStore) SaveBestScore(best int) error {
	s.saves = append(s.saves, best)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.best = best
	return nil
}

// fakeBoard resolves every call synchronously.
type fakeBoard struct {
	authed    bool
	authErr   error
	remote    int
	remoteErr error
	reported  []int
	loads     int
}

func (b *fakeBoard) Authenticated() bool { return b.authed }

func (b *fakeBoard) Authenticate(_ context.Context, done func(Player, error)) {
	if b.authErr != nil {
		done(Player{}, b.authErr)
		return
	}
	b.authed = true
	done(Player{ID: "p1", Name: "tester"}, nil)
}

func (b *fakeBoard) ReportScore(_ context.Context, _ string, score int, done func(error)) {
	b.reported = append(b.reported, score)
	done(nil)
}

func (b *fakeBoard) LoadPlayerScore(_ context.Context, _ string, done func(int, error)) {
	b.loads++
	done(b.remote, b.remoteErr)
}

type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0 }

func newSpawner(t *testing.T) *pipes.Spawner {
	t.Helper()
	sp, err := pipes.NewSpawner(pipes.Config{
		SpawnGapDistance:    5,
		PipeWidth:           1.5,
		PipeGapHeight:       3,
		MaxTopPipeOffset:    0.5,
		MinBottomPipeOffset: 2.5,
		CheckpointWidth:     0.1,
	}, pipes.Bounds{Top: 5, Bottom: -5, HalfWidth: 8}, zeroRand{})
	if err != nil {
		t.Fatalf("NewSpawner failed: %v", err)
	}
	return sp
}

func TestAddScoreCounts(t *testing.T) {
	hud := &fakeHUD{}
	s := New(Options{HUD: hud})
	s.StartGame(0)

	for i := 0; i < 17; i++ {
		s.AddScore()
	}
	if s.Score() != 17 {
		t.Errorf("Expected score 17, got %d", s.Score())
	}
	if hud.score != 17 {
		t.Errorf("Expected HUD score 17, got %d", hud.score)
	}
}

func TestAddScoreIgnoredOutsidePlay(t *testing.T) {
	s := New(Options{HUD: &fakeHUD{}})
	s.AddScore()
	if s.Score() != 0 {
		t.Errorf("Expected no score before start, got %d", s.Score())
	}

	s.StartGame(0)
	s.AddScore()
	s.EndGame(context.Background())
	s.AddScore()
	if s.Score() != 1 {
		t.Errorf("Expected score frozen at 1 after game over, got %d", s.Score())
	}
}

func TestEndGameUpdatesBest(t *testing.T) {
	tests := []struct {
		name       string
		storedBest int
		score      int
		wantBest   int
		wantSaves  int
		highlights int
	}{
		{name: "new best", storedBest: 3, score: 5, wantBest: 5, wantSaves: 1, highlights: 1},
		{name: "equal best", storedBest: 5, score: 5, wantBest: 5},
		{name: "lower score", storedBest: 9, score: 2, wantBest: 9},
		{name: "first run", storedBest: 0, score: 1, wantBest: 1, wantSaves: 1, highlights: 1},
		{name: "zero score", storedBest: 0, score: 0, wantBest: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hud := &fakeHUD{}
			store := &fakeStore{best: tt.storedBest}
			s := New(Options{HUD: hud, Store: store})
			s.Init(context.Background())
			s.StartGame(0)
			for i := 0; i < tt.score; i++ {
				s.AddScore()
			}
			s.EndGame(context.Background())

			if s.BestScore() != tt.wantBest {
				t.Errorf("Expected best %d, got %d", tt.wantBest, s.BestScore())
			}
			if hud.best != tt.wantBest {
				t.Errorf("Expected HUD best %d, got %d", tt.wantBest, hud.best)
			}
			if len(store.saves) != tt.wantSaves {
				t.Errorf("Expected %d saves, got %d", tt.wantSaves, len(store.saves))
			}
			if hud.highlights != tt.highlights {
				t.Errorf("Expected %d highlights, got %d", tt.highlights, hud.highlights)
			}
			if hud.ended != 1 {
				t.Errorf("Expected HUD EndGame once, got %d", hud.ended)
			}
		})
	}
}

func TestEndGameIsIdempotent(t *testing.T) {
	hud := &fakeHUD{}
	store := &fakeStore{}
	s := New(Options{HUD: hud, Store: store})
	s.StartGame(0)
	s.AddScore()

	s.EndGame(context.Background())
	s.EndGame(context.Background())

	if hud.ended != 1 {
		t.Errorf("Expected a single EndGame notification, got %d", hud.ended)
	}
	if len(store.saves) != 1 {
		t.Errorf("Expected a single save, got %d", len(store.saves))
	}
	if s.Phase() != PhaseOver {
		t.Errorf("Expected phase over, got %s", s.Phase())
	}
}

func TestEndGameSwallowsSaveError(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	board := &fakeBoard{authed: true}
	s := New(Options{HUD: &fakeHUD{}, Store: store, Board: board, BoardID: "top"})
	s.StartGame(0)
	s.AddScore()
	s.AddScore()
	s.EndGame(context.Background())

	if s.BestScore() != 2 {
		t.Errorf("Expected in-memory best 2 despite save failure, got %d", s.BestScore())
	}
	if len(board.reported) != 1 || board.reported[0] != 2 {
		t.Errorf("Expected score 2 reported once, got %v", board.reported)
	}
}

func TestEndGameSkipsReportWhenUnauthenticated(t *testing.T) {
	board := &fakeBoard{}
	s := New(Options{HUD: &fakeHUD{}, Board: board})
	s.StartGame(0)
	s.AddScore()
	s.EndGame(context.Background())

	if len(board.reported) != 0 {
		t.Errorf("Expected no reports while unauthenticated, got %v", board.reported)
	}
}

func TestBestScoreNeverDecreases(t *testing.T) {
	store := &fakeStore{}
	best := 0
	for _, score := range []int{4, 2, 7, 7, 1, 10, 0} {
		s := New(Options{HUD: &fakeHUD{}, Store: store})
		s.Init(context.Background())
		s.StartGame(0)
		for i := 0; i < score; i++ {
			s.AddScore()
		}
		s.EndGame(context.Background())

		if s.BestScore() < best {
			t.Fatalf("best decreased from %d to %d", best, s.BestScore())
		}
		if score > best {
			best = score
		}
		if s.BestScore() != best {
			t.Fatalf("Expected best %d, got %d", best, s.BestScore())
		}
	}
}

func TestInitAppliesRemoteBestOnUpdate(t *testing.T) {
	hud := &fakeHUD{}
	board := &fakeBoard{remote: 42}
	s := New(Options{HUD: hud, Store: &fakeStore{best: 10}, Board: board, BoardID: "top"})

	s.Init(context.Background())
	if s.BestScore() != 10 {
		t.Fatalf("Expected local best before Update, got %d", s.BestScore())
	}

	// First Update runs the authentication result, which requests the score.
	s.Update()
	s.Update()

	if !board.authed {
		t.Fatal("Expected board to be authenticated")
	}
	if s.BestScore() != 42 {
		t.Errorf("Expected remote best 42, got %d", s.BestScore())
	}
	if hud.best != 42 {
		t.Errorf("Expected HUD best 42, got %d", hud.best)
	}
}

func TestInitStoresHigherRemoteBest(t *testing.T) {
	store := &fakeStore{best: 10}
	board := &fakeBoard{authed: true, remote: 42}
	s := New(Options{HUD: &fakeHUD{}, Store: store, Board: board, BoardID: "top"})

	s.Init(context.Background())
	s.Update()

	if len(store.saves) != 1 || store.best != 42 {
		t.Fatalf("Expected remote best 42 saved once, got saves %v", store.saves)
	}

	// An offline session afterwards starts from the saved value.
	offline := New(Options{HUD: &fakeHUD{}, Store: store})
	offline.Init(context.Background())
	if offline.BestScore() != 42 {
		t.Errorf("Expected offline best 42, got %d", offline.BestScore())
	}
}

func TestInitKeepsHigherLocalBest(t *testing.T) {
	board := &fakeBoard{authed: true, remote: 3}
	store := &fakeStore{best: 8}
	s := New(Options{HUD: &fakeHUD{}, Store: store, Board: board})
	s.Init(context.Background())
	s.Update()

	if s.BestScore() != 8 {
		t.Errorf("Expected local best 8 to win, got %d", s.BestScore())
	}
	if store.saves != nil {
		t.Errorf("Expected no save for a lower remote best, got %v", store.saves)
	}
	if board.loads != 1 {
		t.Errorf("Expected one remote load, got %d", board.loads)
	}
}

func TestInitDegradesOnServiceErrors(t *testing.T) {
	tests := []struct {
		name  string
		board *fakeBoard
	}{
		{name: "auth failure", board: &fakeBoard{authErr: errors.New("offline")}},
		{name: "load failure", board: &fakeBoard{authed: true, remote: 99, remoteErr: errors.New("timeout")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hud := &fakeHUD{}
			s := New(Options{HUD: hud, Store: &fakeStore{best: 6}, Board: tt.board})
			s.Init(context.Background())
			s.Update()
			s.Update()

			if s.BestScore() != 6 {
				t.Errorf("Expected local best 6, got %d", s.BestScore())
			}
			if hud.best != 6 {
				t.Errorf("Expected HUD best 6, got %d", hud.best)
			}
		})
	}
}

func TestInitSurvivesStoreError(t *testing.T) {
	hud := &fakeHUD{best: -1}
	s := New(Options{HUD: hud, Store: &fakeStore{best: 5, loadErr: errors.New("corrupt")}})
	s.Init(context.Background())

	if s.BestScore() != 0 {
		t.Errorf("Expected best 0 after load failure, got %d", s.BestScore())
	}
	if hud.best != 0 {
		t.Errorf("Expected HUD best 0, got %d", hud.best)
	}
}

func TestSessionDrivesSpawner(t *testing.T) {
	sp := newSpawner(t)
	s := New(Options{HUD: &fakeHUD{}, Spawner: sp})

	if evs := s.AdvanceSpawner(100); len(evs) != 0 {
		t.Fatalf("Expected no spawns before StartGame, got %d", len(evs))
	}

	s.StartGame(0)
	if !sp.Spawning() {
		t.Fatal("Expected spawner to run after StartGame")
	}
	if evs := s.AdvanceSpawner(6); len(evs) != 1 {
		t.Fatalf("Expected one spawn, got %d", len(evs))
	}

	s.EndGame(context.Background())
	if sp.Spawning() {
		t.Fatal("Expected spawner to stop after EndGame")
	}
	if evs := s.AdvanceSpawner(200); len(evs) != 0 {
		t.Fatalf("Expected no spawns after EndGame, got %d", len(evs))
	}
}

func TestStartGameOnlyOnce(t *testing.T) {
	hud := &fakeHUD{}
	sp := newSpawner(t)
	s := New(Options{HUD: hud, Spawner: sp})
	s.StartGame(0)
	s.AdvanceSpawner(6)
	s.StartGame(50)

	if hud.started != 1 {
		t.Errorf("Expected one StartGame notification, got %d", hud.started)
	}
	if sp.PrevSpawnX() != 6 {
		t.Errorf("Second StartGame reset the spawner to %f", sp.PrevSpawnX())
	}
}
