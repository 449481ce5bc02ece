package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/automoto/flapper/shared/session"
)

// ErrUnauthorized is returned when the service rejects the session token.
var ErrUnauthorized = errors.New("leaderboard: unauthorized")

// ScoreEntry is one row of a leaderboard.
type ScoreEntry struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
}

type authResponse struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

type scoreResponse struct {
	Best     int  `json:"best"`
	Improved bool `json:"improved"`
}

// LeaderboardClient talks to the leaderboard service over HTTP. The
// callback methods run their request on a new goroutine and invoke done
// from it; FetchTopScores blocks.
type LeaderboardClient struct {
	baseURL    string
	name       string
	deviceID   string
	timeout    time.Duration
	httpClient *http.Client

	mu     sync.RWMutex
	player session.Player
	token  string
}

func NewLeaderboardClient(baseURL, name, deviceID string, timeout time.Duration) *LeaderboardClient {
	return &LeaderboardClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		name:       name,
		deviceID:   deviceID,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// Authenticated reports whether the client holds a session token.
func (c *LeaderboardClient) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// Player returns the identity from the last successful authentication.
func (c *LeaderboardClient) Player() session.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.player
}

func (c *LeaderboardClient) Authenticate(ctx context.Context, done func(session.Player, error)) {
	go func() {
		p, err := c.authenticate(ctx)
		done(p, err)
	}()
}

func (c *LeaderboardClient) ReportScore(ctx context.Context, boardID string, score int, done func(error)) {
	go func() {
		err := c.withReauth(ctx, func() error {
			return c.reportScore(ctx, boardID, score)
		})
		done(err)
	}()
}

// LoadPlayerScore reports 0 for a player with no score on the board.
func (c *LeaderboardClient) LoadPlayerScore(ctx context.Context, boardID string, done func(int, error)) {
	go func() {
		score, err := c.playerScore(ctx, boardID)
		done(score, err)
	}()
}

// FetchTopScores returns up to limit entries, best first.
func (c *LeaderboardClient) FetchTopScores(ctx context.Context, boardID string, limit int) ([]ScoreEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	path := fmt.Sprintf("/boards/%s/scores?limit=%d", url.PathEscape(boardID), limit)
	var entries []ScoreEntry
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, fmt.Errorf("fetch top scores: %w", err)
	}
	return entries, nil
}

func (c *LeaderboardClient) authenticate(ctx context.Context) (session.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := map[string]string{"name": c.name, "deviceId": c.deviceID}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth", body, &resp); err != nil {
		return session.Player{}, fmt.Errorf("authenticate: %w", err)
	}
	if resp.Token == "" {
		return session.Player{}, fmt.Errorf("authenticate: empty token")
	}

	p := session.Player{ID: resp.PlayerID, Name: resp.Name}
	c.mu.Lock()
	c.player = p
	c.token = resp.Token
	c.mu.Unlock()

	log.Printf("[leaderboard] authenticated %s as %q", p.ID, p.Name)
	return p, nil
}

// withReauth retries fn once after a fresh authentication if the token was rejected.
func (c *LeaderboardClient) withReauth(ctx context.Context, fn func() error) error {
	err := fn()
	if !errors.Is(err, ErrUnauthorized) {
		return err
	}
	log.Printf("[leaderboard] session expired, authenticating again")
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	if _, err := c.authenticate(ctx); err != nil {
		return err
	}
	return fn()
}

func (c *LeaderboardClient) reportScore(ctx context.Context, boardID string, score int) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var resp scoreResponse
	path := fmt.Sprintf("/boards/%s/scores", url.PathEscape(boardID))
	if err := c.do(ctx, http.MethodPost, path, map[string]int{"score": score}, &resp); err != nil {
		return fmt.Errorf("report score: %w", err)
	}
	log.Printf("[leaderboard] reported %d, board best %d", score, resp.Best)
	return nil
}

func (c *LeaderboardClient) playerScore(ctx context.Context, boardID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	playerID := c.Player().ID
	if playerID == "" {
		return 0, fmt.Errorf("load player score: not authenticated")
	}

	var entry ScoreEntry
	path := fmt.Sprintf("/boards/%s/players/%s", url.PathEscape(boardID), url.PathEscape(playerID))
	err := c.do(ctx, http.MethodGet, path, nil, &entry)
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load player score: %w", err)
	}
	return entry.Score, nil
}

// StatusError is a non-2xx response from the service.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return "leaderboard returned status " + strconv.Itoa(e.Code)
}

func (c *LeaderboardClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
