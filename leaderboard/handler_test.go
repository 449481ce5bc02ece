package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func do(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestScoreFlow(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	h := routes(store)

	rec := do(t, h, http.MethodPost, "/auth", "", `{"name":"ana","deviceId":"dev-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("auth: expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var player Player
	if err := json.NewDecoder(rec.Body).Decode(&player); err != nil {
		t.Fatalf("auth decode: %v", err)
	}
	if player.ID == "" || player.Token == "" {
		t.Fatalf("auth: missing id or token: %+v", player)
	}

	rec = do(t, h, http.MethodGet, "/boards/top_scores/players/"+player.ID, "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("player score before submit: expected 404, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/boards/top_scores/scores", player.Token, `{"score":12}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var resp scoreResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Best != 12 || !resp.Improved {
		t.Errorf("submit: unexpected response %+v", resp)
	}

	rec = do(t, h, http.MethodGet, "/boards/top_scores/players/"+player.ID, "", "")
	var entry Entry
	_ = json.NewDecoder(rec.Body).Decode(&entry)
	if rec.Code != http.StatusOK || entry.Score != 12 || entry.Rank != 1 {
		t.Errorf("player score: got %d %+v", rec.Code, entry)
	}

	rec = do(t, h, http.MethodGet, "/boards/top_scores/scores?limit=5", "", "")
	var top []Entry
	_ = json.NewDecoder(rec.Body).Decode(&top)
	if len(top) != 1 || top[0].Name != "ana" {
		t.Errorf("top scores: unexpected %+v", top)
	}
}

func TestSubmitRejections(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	h := routes(store)
	p := store.Authenticate("ana", "dev")

	tests := []struct {
		name  string
		token string
		body  string
		want  int
	}{
		{name: "no token", body: `{"score":1}`, want: http.StatusUnauthorized},
		{name: "bad token", token: "nope", body: `{"score":1}`, want: http.StatusUnauthorized},
		{name: "bad json", token: p.Token, body: `{`, want: http.StatusBadRequest},
		{name: "negative", token: p.Token, body: `{"score":-3}`, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/boards/b/scores", tt.token, tt.body)
			if rec.Code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestAuthValidation(t *testing.T) {
	h := routes(func() *Store { s, _ := newTestStore(time.Hour); return s }())

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "missing device", body: `{"name":"ana"}`, want: http.StatusBadRequest},
		{name: "blank name", body: `{"name":"  ","deviceId":"d"}`, want: http.StatusBadRequest},
		{name: "garbage", body: `not json`, want: http.StatusBadRequest},
		{name: "ok", body: `{"name":"ana","deviceId":"d"}`, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/auth", "", tt.body)
			if rec.Code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestAuthTruncatesLongNames(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", strings.Repeat("a", 30), strings.Repeat("a", maxNameLength)},
		{"multibyte", strings.Repeat("é", 30), strings.Repeat("é", maxNameLength)},
		{"emoji at the cut", strings.Repeat("b", maxNameLength-1) + "🐦🐦", strings.Repeat("b", maxNameLength-1) + "🐦"},
		{"short", "ünïcode", "ünïcode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(time.Hour)
			body, _ := json.Marshal(authRequest{Name: tt.in, DeviceID: "dev-" + tt.name})
			rec := do(t, routes(store), http.MethodPost, "/auth", "", string(body))
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
			}

			var player Player
			if err := json.NewDecoder(rec.Body).Decode(&player); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if player.Name != tt.want {
				t.Errorf("Expected name %q, got %q", tt.want, player.Name)
			}
			if strings.ContainsRune(player.Name, utf8.RuneError) {
				t.Errorf("name %q contains a broken rune", player.Name)
			}
		})
	}
}

func TestTopScoresLimit(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	h := routes(store)

	rec := do(t, h, http.MethodGet, "/boards/b/scores?limit=zero", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad limit, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/boards/empty/scores", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("Expected empty JSON array, got %s", body)
	}
}

func TestHealth(t *testing.T) {
	rec := do(t, Health(), http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("unexpected health response %d %s", rec.Code, rec.Body)
	}
}
