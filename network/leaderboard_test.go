package network

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/automoto/flapper/shared/session"
)

// fakeService is a minimal in-memory leaderboard service.
type fakeService struct {
	mu        sync.Mutex
	authCalls int
	validTok  string
	scores    map[string]int
	rejectTop bool
}

func newFakeService() *fakeService {
	return &fakeService{scores: map[string]int{}}
}

func (f *fakeService) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.authCalls++
		f.validTok = "tok-" + string(rune('0'+f.authCalls))
		tok := f.validTok
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{"playerId": "p1", "name": "Ann", "token": tok})
	})
	mux.HandleFunc("POST /boards/{board}/scores", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if r.Header.Get("Authorization") != "Bearer "+f.validTok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req struct {
			Score int `json:"score"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.scores["p1"] = max(f.scores["p1"], req.Score)
		_ = json.NewEncoder(w).Encode(map[string]any{"best": f.scores["p1"], "improved": true})
	})
	mux.HandleFunc("GET /boards/{board}/players/{player}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		score, ok := f.scores[r.PathValue("player")]
		if !ok {
			http.Error(w, "no score", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(ScoreEntry{PlayerID: "p1", Name: "Ann", Score: score, Rank: 1})
	})
	mux.HandleFunc("GET /boards/{board}/scores", func(w http.ResponseWriter, r *http.Request) {
		if f.rejectTop {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode([]ScoreEntry{
			{PlayerID: "p2", Name: "Bo", Score: 30, Rank: 1},
			{PlayerID: "p1", Name: "Ann", Score: 12, Rank: 2},
		})
	})
	return mux
}

func newTestClient(t *testing.T, f *fakeService) *LeaderboardClient {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return NewLeaderboardClient(srv.URL+"/", "Ann", "device-1", 2*time.Second)
}

func authenticate(t *testing.T, c *LeaderboardClient) session.Player {
	t.Helper()
	type result struct {
		p   session.Player
		err error
	}
	ch := make(chan result, 1)
	c.Authenticate(context.Background(), func(p session.Player, err error) {
		ch <- result{p, err}
	})
	res := <-ch
	if res.err != nil {
		t.Fatalf("Authenticate: %v", res.err)
	}
	return res.p
}

func TestAuthenticateStoresIdentity(t *testing.T) {
	c := newTestClient(t, newFakeService())
	if c.Authenticated() {
		t.Fatal("Expected a new client to be unauthenticated")
	}

	p := authenticate(t, c)
	if p.ID != "p1" || p.Name != "Ann" {
		t.Errorf("Expected p1/Ann, got %+v", p)
	}
	if !c.Authenticated() {
		t.Error("Expected client to hold a token")
	}
}

func TestLoadPlayerScoreMissingIsZero(t *testing.T) {
	c := newTestClient(t, newFakeService())
	authenticate(t, c)

	ch := make(chan error, 1)
	var got int
	c.LoadPlayerScore(context.Background(), "top", func(score int, err error) {
		got = score
		ch <- err
	})
	if err := <-ch; err != nil {
		t.Fatalf("Expected no error for a missing score, got %v", err)
	}
	if got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestReportThenLoadScore(t *testing.T) {
	c := newTestClient(t, newFakeService())
	authenticate(t, c)

	done := make(chan error, 1)
	c.ReportScore(context.Background(), "top", 14, func(err error) { done <- err })
	if err := <-done; err != nil {
		t.Fatalf("ReportScore: %v", err)
	}

	var got int
	c.LoadPlayerScore(context.Background(), "top", func(score int, err error) {
		got = score
		done <- err
	})
	if err := <-done; err != nil || got != 14 {
		t.Errorf("Expected 14, got %d (%v)", got, err)
	}
}

func TestReportScoreReauthenticatesOnce(t *testing.T) {
	f := newFakeService()
	c := newTestClient(t, f)
	authenticate(t, c)

	// Server forgets the token
	f.mu.Lock()
	f.validTok = "rotated"
	f.mu.Unlock()

	done := make(chan error, 1)
	c.ReportScore(context.Background(), "top", 3, func(err error) { done <- err })
	if err := <-done; err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.authCalls != 2 {
		t.Errorf("Expected 2 authentications, got %d", f.authCalls)
	}
}

func TestLoadPlayerScoreRequiresIdentity(t *testing.T) {
	c := newTestClient(t, newFakeService())

	done := make(chan error, 1)
	c.LoadPlayerScore(context.Background(), "top", func(_ int, err error) { done <- err })
	if err := <-done; err == nil {
		t.Error("Expected an error before authenticating")
	}
}

func TestFetchTopScores(t *testing.T) {
	c := newTestClient(t, newFakeService())

	entries, err := c.FetchTopScores(context.Background(), "top", 10)
	if err != nil {
		t.Fatalf("FetchTopScores: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "Bo" || entries[1].Rank != 2 {
		t.Errorf("Unexpected entries %+v", entries)
	}
}

func TestFetchTopScoresReportsStatus(t *testing.T) {
	f := newFakeService()
	f.rejectTop = true
	c := newTestClient(t, f)

	_, err := c.FetchTopScores(context.Background(), "top", 10)
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusInternalServerError {
		t.Errorf("Expected a 500 StatusError, got %v", err)
	}
}

func TestUnreachableServiceFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewLeaderboardClient(srv.URL, "Ann", "d", time.Second)

	done := make(chan error, 1)
	c.Authenticate(context.Background(), func(_ session.Player, err error) { done <- err })
	if err := <-done; err == nil {
		t.Error("Expected an error for a closed server")
	}
	if c.Authenticated() {
		t.Error("Expected no token after a failed authentication")
	}
}
