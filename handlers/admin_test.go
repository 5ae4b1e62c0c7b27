// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/ten-rounds/cliparse"
	"github.com/danielhkuo/ten-rounds/db"
	"github.com/danielhkuo/ten-rounds/experiment"
	"github.com/danielhkuo/ten-rounds/models"
	"github.com/danielhkuo/ten-rounds/testutil"
)

func newAdminHandler(t *testing.T) (*AdminHandler, cliparse.Config, *sql.DB) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	return NewAdminHandler(conn, cfg), cfg, conn
}

func seedFinalized(t *testing.T, conn *sql.DB, id string, chosen int) {
	t.Helper()
	rounds := completedRounds(chosen%2 == 0)
	summary := experiment.Summarize(rounds, chosen)
	testutil.InsertParticipant(t, conn, models.Participant{
		ID:          id,
		ChosenRound: summary.ChosenRound,
		Rounds:      rounds,
		AverageX:    summary.AverageX,
		FinalPayoff: summary.FinalPayoff,
	})
}

func TestAdminRequiresKey(t *testing.T) {
	handler, cfg, conn := newAdminHandler(t)

	tests := []struct {
		name string
		key  string
	}{
		{"no key", ""},
		{"wrong key", "not-the-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := "/admin"
			if tt.key != "" {
				path += "?key=" + url.QueryEscape(tt.key)
			}
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			handler.Dashboard(w, req)

			testutil.AssertStatus(t, w, http.StatusForbidden)
		})
	}

	// No configured key means nothing is accepted, not everything
	noKey := cfg
	noKey.AdminKey = ""
	open := NewAdminHandler(conn, noKey)

	req := httptest.NewRequest("GET", "/admin?key=", nil)
	w := httptest.NewRecorder()
	open.Dashboard(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)
}

func TestAdminDashboard(t *testing.T) {
	handler, cfg, conn := newAdminHandler(t)
	seedFinalized(t, conn, "p1", 1)
	seedFinalized(t, conn, "p2", 2)

	req := httptest.NewRequest("GET", "/admin?key="+url.QueryEscape(cfg.AdminKey), nil)
	w := httptest.NewRecorder()
	handler.Dashboard(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, cfg.Title) {
		t.Errorf("Expected dashboard to show title %q", cfg.Title)
	}
	if !strings.Contains(body, "2 participants") {
		t.Errorf("Expected participant count in dashboard, got: %s", body)
	}
}

func TestSetState(t *testing.T) {
	handler, cfg, conn := newAdminHandler(t)

	if _, err := db.EnsureState(conn, cfg.Title); err != nil {
		t.Fatalf("Failed to init state: %v", err)
	}

	do := func(action string) *httptest.ResponseRecorder {
		req := testutil.MakeFormRequest("POST", "/admin/state", url.Values{
			"key":    {cfg.AdminKey},
			"action": {action},
		})
		w := httptest.NewRecorder()
		handler.SetState(w, req)
		return w
	}

	w := do(models.ActionClose)
	testutil.AssertRedirect(t, w, "/admin?key="+url.QueryEscape(cfg.AdminKey))

	state, err := db.EnsureState(conn, cfg.Title)
	if err != nil {
		t.Fatalf("Failed to read state: %v", err)
	}
	if state.IsOpen {
		t.Error("Expected experiment closed")
	}

	do(models.ActionOpen)
	state, _ = db.EnsureState(conn, cfg.Title)
	if !state.IsOpen {
		t.Error("Expected experiment reopened")
	}

	w = do("bogus")
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestReset(t *testing.T) {
	handler, cfg, conn := newAdminHandler(t)
	seedFinalized(t, conn, "p1", 1)
	seedFinalized(t, conn, "p2", 2)

	req := testutil.MakeFormRequest("POST", "/admin/reset", url.Values{"key": {cfg.AdminKey}})
	w := httptest.NewRecorder()
	handler.Reset(w, req)

	testutil.AssertRedirect(t, w, "/admin?key="+url.QueryEscape(cfg.AdminKey))

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM participant`).Scan(&count); err != nil {
		t.Fatalf("Failed to count participants: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no participants after reset, got %d", count)
	}

	// The experiment configuration row survives
	if _, err := db.EnsureState(conn, cfg.Title); err != nil {
		t.Errorf("Expected experiment state to survive reset: %v", err)
	}
}

func TestExport(t *testing.T) {
	handler, cfg, conn := newAdminHandler(t)
	seedFinalized(t, conn, "p1", 1)
	seedFinalized(t, conn, "p2", 2)
	seedFinalized(t, conn, "p3", 3)

	req := httptest.NewRequest("GET", "/admin/export?key="+url.QueryEscape(cfg.AdminKey), nil)
	w := httptest.NewRecorder()
	handler.Export(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "participants.csv") {
		t.Errorf("Content-Disposition = %q, want attachment filename", cd)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 4 {
		t.Errorf("Expected header plus 3 rows, got %d lines", len(lines))
	}
}

func TestStatsJSON(t *testing.T) {
	handler, cfg, conn := newAdminHandler(t)
	seedFinalized(t, conn, "p1", 1)
	seedFinalized(t, conn, "p2", 2)

	req := httptest.NewRequest("GET", "/admin/stats.json?key="+url.QueryEscape(cfg.AdminKey), nil)
	w := httptest.NewRecorder()
	handler.StatsJSON(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.StatsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.ParticipantCount != 2 {
		t.Errorf("ParticipantCount = %d, want 2", resp.ParticipantCount)
	}
	if resp.DecisionCount != 2*experiment.NumRounds {
		t.Errorf("DecisionCount = %d, want %d", resp.DecisionCount, 2*experiment.NumRounds)
	}
	if len(resp.Hist10) == 0 {
		t.Error("Expected non-empty width-10 histogram")
	}
}
