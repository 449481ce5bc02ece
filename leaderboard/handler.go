package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
)

type authRequest struct {
	Name     string `json:"name"`
	DeviceID string `json:"deviceId"`
}

type scoreRequest struct {
	Score int `json:"score"`
}

type scoreResponse struct {
	Best     int  `json:"best"`
	Improved bool `json:"improved"`
}

const (
	maxRequestBody = 1 << 16 // 64 KB
	maxNameLength  = 24
	defaultLimit   = 10
	maxLimit       = 100
)

func setHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

func Authenticate(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setHeaders(w)

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req authRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.DeviceID == "" || req.Name == "" {
			http.Error(w, `{"error":"name and deviceId required"}`, http.StatusBadRequest)
			return
		}
		req.Name = truncateName(req.Name)

		player := store.Authenticate(req.Name, req.DeviceID)
		log.Printf("[leaderboard] authenticated %q (id=%s)", player.Name, player.ID)

		if err := json.NewEncoder(w).Encode(player); err != nil {
			log.Printf("[leaderboard] auth encode error: %v", err)
		}
	}
}

// truncateName cuts name to maxNameLength runes.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameLength {
		return name
	}
	return strings.TrimSpace(string(runes[:maxNameLength]))
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimPrefix(h, prefix)
}

func SubmitScore(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setHeaders(w)

		player, ok := store.PlayerForToken(bearerToken(r))
		if !ok {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}
		if req.Score < 0 {
			http.Error(w, `{"error":"score must not be negative"}`, http.StatusBadRequest)
			return
		}

		boardID := r.PathValue("board")
		best, improved := store.Submit(boardID, player.ID, req.Score)
		if improved {
			log.Printf("[leaderboard] %q new best %d on %s", player.Name, best, boardID)
		}

		_ = json.NewEncoder(w).Encode(scoreResponse{Best: best, Improved: improved})
	}
}

func PlayerScore(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setHeaders(w)

		entry, ok := store.PlayerScore(r.PathValue("board"), r.PathValue("player"))
		if !ok {
			http.Error(w, `{"error":"no score"}`, http.StatusNotFound)
			return
		}
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			log.Printf("[leaderboard] player score encode error: %v", err)
		}
	}
}

func TopScores(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setHeaders(w)

		limit := defaultLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, `{"error":"invalid limit"}`, http.StatusBadRequest)
				return
			}
			limit = min(n, maxLimit)
		}

		entries := store.Top(r.PathValue("board"), limit)
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			log.Printf("[leaderboard] top scores encode error: %v", err)
		}
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

func routes(store *Store) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth", Authenticate(store))
	mux.HandleFunc("POST /boards/{board}/scores", SubmitScore(store))
	mux.HandleFunc("GET /boards/{board}/scores", TopScores(store))
	mux.HandleFunc("GET /boards/{board}/players/{player}", PlayerScore(store))
	mux.HandleFunc("GET /health", Health())
	return mux
}
