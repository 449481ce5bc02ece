package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"
)

// Player is a registered device identity.
type Player struct {
	ID    string `json:"playerId"`
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

// Entry is one ranked row of a board.
type Entry struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
}

type playerRecord struct {
	ID       string
	Name     string
	DeviceID string
}

type tokenRecord struct {
	PlayerID string
	LastSeen time.Time
}

type scoreRecord struct {
	Score     int
	UpdatedAt time.Time
}

// Store is an in-memory set of boards with per-player best scores.
// Session tokens expire after ttl without use.
type Store struct {
	mu       sync.RWMutex
	players  map[string]*playerRecord
	byDevice map[string]string
	tokens   map[string]*tokenRecord
	boards   map[string]map[string]*scoreRecord
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
}

func NewStore(ttl time.Duration) *Store {
	s := newStore(ttl, time.Now)
	go s.cleanupLoop()
	return s
}

func newStore(ttl time.Duration, now func() time.Time) *Store {
	return &Store{
		players:  make(map[string]*playerRecord),
		byDevice: make(map[string]string),
		tokens:   make(map[string]*tokenRecord),
		boards:   make(map[string]map[string]*scoreRecord),
		ttl:      ttl,
		now:      now,
		stopCh:   make(chan struct{}),
	}
}

func (s *Store) Stop() {
	close(s.stopCh)
}

func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return fmt.Sprintf("%x", b)
}

// Authenticate returns the player bound to deviceID, creating it on first
// contact, and issues a fresh session token.
func (s *Store) Authenticate(name, deviceID string) Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec *playerRecord
	if id, ok := s.byDevice[deviceID]; ok {
		rec = s.players[id]
		rec.Name = name
	} else {
		rec = &playerRecord{ID: randomID(), Name: name, DeviceID: deviceID}
		s.players[rec.ID] = rec
		s.byDevice[deviceID] = rec.ID
	}

	token := randomID() + randomID()
	s.tokens[token] = &tokenRecord{PlayerID: rec.ID, LastSeen: s.now()}

	return Player{ID: rec.ID, Name: rec.Name, Token: token}
}

// PlayerForToken resolves a session token and refreshes its expiry.
func (s *Store) PlayerForToken(token string) (Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, ok := s.tokens[token]
	if !ok {
		return Player{}, false
	}
	tok.LastSeen = s.now()
	rec := s.players[tok.PlayerID]
	return Player{ID: rec.ID, Name: rec.Name}, true
}

// Submit records score if it beats the player's best and returns the best.
func (s *Store) Submit(boardID, playerID string, score int) (best int, improved bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[boardID]
	if !ok {
		board = make(map[string]*scoreRecord)
		s.boards[boardID] = board
	}

	rec, ok := board[playerID]
	if !ok {
		board[playerID] = &scoreRecord{Score: score, UpdatedAt: s.now()}
		return score, true
	}
	if score > rec.Score {
		rec.Score = score
		rec.UpdatedAt = s.now()
		return score, true
	}
	return rec.Score, false
}

// PlayerScore returns the player's ranked entry on a board.
func (s *Store) PlayerScore(boardID, playerID string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.ranked(boardID) {
		if e.PlayerID == playerID {
			return e, true
		}
	}
	return Entry{}, false
}

// Top returns up to limit entries ordered by score.
func (s *Store) Top(boardID string, limit int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.ranked(boardID)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// ranked must be called with s.mu held.
func (s *Store) ranked(boardID string) []Entry {
	board := s.boards[boardID]
	type row struct {
		Entry
		at time.Time
	}
	rows := make([]row, 0, len(board))
	for id, rec := range board {
		name := ""
		if p, ok := s.players[id]; ok {
			name = p.Name
		}
		rows = append(rows, row{Entry: Entry{PlayerID: id, Name: name, Score: rec.Score}, at: rec.UpdatedAt})
	}

	// Higher score first; earlier achievers win ties.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		if !rows[i].at.Equal(rows[j].at) {
			return rows[i].at.Before(rows[j].at)
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})

	result := make([]Entry, len(rows))
	for i, r := range rows {
		r.Rank = i + 1
		result[i] = r.Entry
	}
	return result
}

func (s *Store) expireTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for token, rec := range s.tokens {
		if now.Sub(rec.LastSeen) >= s.ttl {
			log.Printf("[leaderboard] expired session for player %s (idle %s)",
				rec.PlayerID, now.Sub(rec.LastSeen).Round(time.Second))
			delete(s.tokens, token)
		}
	}
}

func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.expireTokens()
		}
	}
}
