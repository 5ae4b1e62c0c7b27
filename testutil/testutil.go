// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ten-rounds/cliparse"
	"github.com/danielhkuo/ten-rounds/db"
	"github.com/danielhkuo/ten-rounds/models"
)

// SetupTestDB opens an in-memory SQLite database with the full schema.
// A single connection keeps the in-memory database alive for the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		SessionSecret: "test-session-secret",
		AdminKey:      "test-admin-key",
		Title:         "Test Experiment",
	}
}

// SeqRand is a deterministic randomness provider that replays a fixed
// sequence of draws, wrapping around at the end.
type SeqRand struct {
	Seq []int
	pos int
}

func (s *SeqRand) IntN(n int) int {
	if len(s.Seq) == 0 {
		return 0
	}
	v := s.Seq[s.pos%len(s.Seq)] % n
	s.pos++
	return v
}

// InsertParticipant writes a finalized participant row directly
func InsertParticipant(t *testing.T, conn *sql.DB, p models.Participant) {
	t.Helper()

	rounds, err := json.Marshal(p.Rounds)
	if err != nil {
		t.Fatalf("Failed to marshal rounds: %v", err)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	_, err = conn.Exec(`
		INSERT INTO participant (id, created_at, name, gender, age, race, chosen_round, rounds, average_x, final_payoff)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, p.ID, p.CreatedAt, p.Name, p.Gender, p.Age, p.Race, p.ChosenRound, string(rounds), p.AverageX, p.FinalPayoff)
	if err != nil {
		t.Fatalf("Failed to insert test participant: %v", err)
	}
}

// MakeFormRequest creates a form-encoded HTTP test request
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	if form == nil {
		return httptest.NewRequest(method, path, nil)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertRedirect checks for a redirect to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected status %d, got %d. Body: %s", http.StatusSeeOther, w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}
