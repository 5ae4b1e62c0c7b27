// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ten-rounds/cliparse"
	"github.com/danielhkuo/ten-rounds/db"
	"github.com/danielhkuo/ten-rounds/experiment"
	"github.com/danielhkuo/ten-rounds/middleware"
	"github.com/danielhkuo/ten-rounds/models"
	"github.com/danielhkuo/ten-rounds/session"
	"github.com/danielhkuo/ten-rounds/views"
)

type ExperimentHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions session.Store
	rng      experiment.Rand
}

func NewExperimentHandler(conn *sql.DB, cfg cliparse.Config, sessions session.Store, rng experiment.Rand) *ExperimentHandler {
	return &ExperimentHandler{db: conn, cfg: cfg, sessions: sessions, rng: rng}
}

// currentSession resolves the request's signed cookie to its session state.
// Any failure along the way (no cookie, forged cookie, expired store entry)
// reads as no session.
func (h *ExperimentHandler) currentSession(r *http.Request) (string, *models.SessionState, bool) {
	sid, ok := session.ReadCookie(r, h.cfg.SessionSecret)
	if !ok {
		return "", nil, false
	}
	state, err := h.sessions.Get(r.Context(), sid)
	if err != nil {
		return "", nil, false
	}
	return sid, state, true
}

// redirectToEntry sends a session-less request back to the landing page. A
// cookie that verified but no longer resolves to stored state (expired TTL,
// server restart on the memory store) is cleared on the way out.
func (h *ExperimentHandler) redirectToEntry(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.ReadCookie(r, h.cfg.SessionSecret); ok {
		session.ClearCookie(w)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// roundNumber parses the {n} path segment, returning 0 when it is not a
// valid round number.
func roundNumber(r *http.Request) int {
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil || n < 1 || n > experiment.NumRounds {
		return 0
	}
	return n
}

// Index handles GET /
func (h *ExperimentHandler) Index(w http.ResponseWriter, r *http.Request) {
	state, err := db.EnsureState(h.db, h.cfg.Title)
	if err != nil {
		slog.Error("failed to load experiment state", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	views.Render(w, "index.html", struct {
		Title  string
		Open   bool
		Notice bool
	}{
		Title:  state.Title,
		Open:   state.IsOpen,
		Notice: r.URL.Query().Get("closed") == "1",
	})
}

// Start handles POST /start. It replaces any existing session with a fresh
// one, drawing the secret paying round before the participant sees anything.
func (h *ExperimentHandler) Start(w http.ResponseWriter, r *http.Request) {
	state, err := db.EnsureState(h.db, h.cfg.Title)
	if err != nil {
		slog.Error("failed to load experiment state", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !state.IsOpen {
		http.Redirect(w, r, "/?closed=1", http.StatusSeeOther)
		return
	}

	// Starting over discards previous progress entirely
	if oldSID, ok := session.ReadCookie(r, h.cfg.SessionSecret); ok {
		if err := h.sessions.Delete(r.Context(), oldSID); err != nil {
			slog.Error("failed to delete previous session", "error", err)
		}
	}

	sid := session.NewID()
	participantID := uuid.NewString()
	sess := &models.SessionState{
		ParticipantID: participantID,
		ChosenRound:   experiment.DrawChosenRound(h.rng),
	}

	if err := h.sessions.Put(r.Context(), sid, sess); err != nil {
		slog.Error("failed to store session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}
	session.SetCookie(w, sid, h.cfg.SessionSecret)

	slog.Info("session started",
		"participant_id", participantID,
		"ip", middleware.GetClientIP(r),
	)

	http.Redirect(w, r, "/survey", http.StatusSeeOther)
}

// SurveyForm handles GET /survey
func (h *ExperimentHandler) SurveyForm(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := h.currentSession(r); !ok {
		h.redirectToEntry(w, r)
		return
	}
	views.Render(w, "survey.html", nil)
}

// SubmitSurvey handles POST /survey. Every field is optional; malformed
// input is coerced to its empty form rather than rejected.
func (h *ExperimentHandler) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	sid, sess, ok := h.currentSession(r)
	if !ok {
		h.redirectToEntry(w, r)
		return
	}

	var name *string
	if v := strings.TrimSpace(r.FormValue("name")); v != "" {
		name = &v
	}

	sess.Demographics = models.Demographics{
		Name:   name,
		Gender: strings.TrimSpace(r.FormValue("gender")),
		Age:    middleware.FormIntPtr(r, "age"),
		Race:   strings.TrimSpace(r.FormValue("race")),
	}

	if err := h.sessions.Put(r.Context(), sid, sess); err != nil {
		slog.Error("failed to store session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}

	http.Redirect(w, r, "/instructions", http.StatusSeeOther)
}

// Instructions handles GET /instructions
func (h *ExperimentHandler) Instructions(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := h.currentSession(r); !ok {
		h.redirectToEntry(w, r)
		return
	}
	views.Render(w, "instructions.html", nil)
}

// RoundForm handles GET /round/{n}. Revisiting a round prefills the amount
// previously committed there.
func (h *ExperimentHandler) RoundForm(w http.ResponseWriter, r *http.Request) {
	n := roundNumber(r)
	if n == 0 {
		http.NotFound(w, r)
		return
	}
	_, sess, ok := h.currentSession(r)
	if !ok {
		h.redirectToEntry(w, r)
		return
	}

	prefill := 0
	if rec, found := experiment.FindRound(sess.Rounds, n); found {
		prefill = rec.X
	}

	views.Render(w, "round.html", struct {
		N       int
		Prefill int
	}{N: n, Prefill: prefill})
}

// SubmitRound handles POST /round/{n}. The outcome is drawn at submission
// time; resubmitting a round draws a fresh outcome and overwrites the old
// record.
func (h *ExperimentHandler) SubmitRound(w http.ResponseWriter, r *http.Request) {
	n := roundNumber(r)
	if n == 0 {
		http.NotFound(w, r)
		return
	}
	sid, sess, ok := h.currentSession(r)
	if !ok {
		h.redirectToEntry(w, r)
		return
	}

	x := experiment.ClampX(middleware.FormInt(r, "x", 0))
	win := experiment.Flip(h.rng)

	rec := models.RoundRecord{
		Round:  n,
		X:      x,
		Win:    win,
		Wealth: experiment.Wealth(x, win),
		TimeMs: middleware.FormInt(r, "time_ms", 0),
	}
	sess.Rounds = experiment.UpsertRound(sess.Rounds, rec)

	if err := h.sessions.Put(r.Context(), sid, sess); err != nil {
		slog.Error("failed to store session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/round/%d/outcome", n), http.StatusSeeOther)
}

// Outcome handles GET /round/{n}/outcome
func (h *ExperimentHandler) Outcome(w http.ResponseWriter, r *http.Request) {
	n := roundNumber(r)
	if n == 0 {
		http.NotFound(w, r)
		return
	}
	_, sess, ok := h.currentSession(r)
	if !ok {
		h.redirectToEntry(w, r)
		return
	}

	rec, found := experiment.FindRound(sess.Rounds, n)
	if !found {
		// Nothing committed for this round yet
		http.Redirect(w, r, fmt.Sprintf("/round/%d", n), http.StatusSeeOther)
		return
	}

	last := n == experiment.NumRounds
	nextURL := "/results"
	if !last {
		nextURL = fmt.Sprintf("/round/%d", n+1)
	}

	views.Render(w, "outcome.html", struct {
		N       int
		NextN   int
		NextURL string
		Last    bool
		Record  models.RoundRecord
	}{N: n, NextN: n + 1, NextURL: nextURL, Last: last, Record: rec})
}

// Results handles GET /results. A complete session is finalized into a
// participant row; revisiting the page re-finalizes with identical values,
// so a refresh is harmless.
func (h *ExperimentHandler) Results(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := h.currentSession(r)
	if !ok {
		h.redirectToEntry(w, r)
		return
	}

	if missing := experiment.FirstMissingRound(sess.Rounds); missing != 0 {
		http.Redirect(w, r, fmt.Sprintf("/round/%d", missing), http.StatusSeeOther)
		return
	}

	summary := experiment.Summarize(sess.Rounds, sess.ChosenRound)

	rounds, err := json.Marshal(sess.Rounds)
	if err != nil {
		slog.Error("failed to marshal rounds", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save results")
		return
	}

	// Upsert keyed on participant ID: re-finalizing overwrites everything
	// except created_at.
	_, err = h.db.Exec(`
		INSERT INTO participant (id, created_at, name, gender, age, race, chosen_round, rounds, average_x, final_payoff)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			gender = EXCLUDED.gender,
			age = EXCLUDED.age,
			race = EXCLUDED.race,
			chosen_round = EXCLUDED.chosen_round,
			rounds = EXCLUDED.rounds,
			average_x = EXCLUDED.average_x,
			final_payoff = EXCLUDED.final_payoff
	`, sess.ParticipantID, time.Now().UTC(),
		sess.Demographics.Name, sess.Demographics.Gender, sess.Demographics.Age, sess.Demographics.Race,
		summary.ChosenRound, string(rounds), summary.AverageX, summary.FinalPayoff)
	if err != nil {
		slog.Error("failed to finalize participant", "error", err, "participant_id", sess.ParticipantID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save results")
		return
	}

	slog.Info("participant finalized",
		"participant_id", sess.ParticipantID,
		"chosen_round", summary.ChosenRound,
		"final_payoff", summary.FinalPayoff,
	)

	views.Render(w, "results.html", struct {
		ChosenRound int
		AverageX    float64
		FinalPayoff float64
		Rounds      []models.RoundRecord
	}{
		ChosenRound: summary.ChosenRound,
		AverageX:    summary.AverageX,
		FinalPayoff: summary.FinalPayoff,
		Rounds:      sess.Rounds,
	})
}
