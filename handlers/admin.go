// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/danielhkuo/ten-rounds/auth"
	"github.com/danielhkuo/ten-rounds/cliparse"
	"github.com/danielhkuo/ten-rounds/db"
	"github.com/danielhkuo/ten-rounds/middleware"
	"github.com/danielhkuo/ten-rounds/models"
	"github.com/danielhkuo/ten-rounds/stats"
	"github.com/danielhkuo/ten-rounds/views"
)

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(conn *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: conn, cfg: cfg}
}

// requireKey validates the shared admin key carried in the "key" form or
// query parameter. With no key configured every request is rejected.
func (h *AdminHandler) requireKey(w http.ResponseWriter, r *http.Request) bool {
	if err := auth.ValidateAdminKey(r.FormValue("key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid admin key")
		return false
	}
	return true
}

// loadParticipants reads every finalized participant, oldest first.
func (h *AdminHandler) loadParticipants() ([]models.Participant, error) {
	rows, err := h.db.Query(`
		SELECT id, created_at, name, gender, age, race, chosen_round, rounds, average_x, final_payoff
		FROM participant
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		var rounds []byte
		err := rows.Scan(&p.ID, &p.CreatedAt, &p.Name, &p.Gender, &p.Age, &p.Race,
			&p.ChosenRound, &rounds, &p.AverageX, &p.FinalPayoff)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rounds, &p.Rounds); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// Dashboard handles GET /admin
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !h.requireKey(w, r) {
		return
	}

	state, err := db.EnsureState(h.db, h.cfg.Title)
	if err != nil {
		slog.Error("failed to load experiment state", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	participants, err := h.loadParticipants()
	if err != nil {
		slog.Error("failed to load participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	views.Render(w, "admin.html", struct {
		State            models.ExperimentState
		ParticipantCount int
		DecisionCount    int
		Key              string
	}{
		State:            state,
		ParticipantCount: len(participants),
		DecisionCount:    len(stats.Flatten(participants)),
		Key:              r.FormValue("key"),
	})
}

// SetState handles POST /admin/state
func (h *AdminHandler) SetState(w http.ResponseWriter, r *http.Request) {
	if !h.requireKey(w, r) {
		return
	}

	var open bool
	switch r.FormValue("action") {
	case models.ActionOpen:
		open = true
	case models.ActionClose:
		open = false
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "action must be open or close")
		return
	}

	if err := db.SetOpen(h.db, open); err != nil {
		slog.Error("failed to update experiment state", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("experiment state changed", "open", open)
	http.Redirect(w, r, "/admin?key="+url.QueryEscape(r.FormValue("key")), http.StatusSeeOther)
}

// Reset handles POST /admin/reset. It deletes every participant row; the
// experiment configuration row survives.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !h.requireKey(w, r) {
		return
	}

	res, err := h.db.Exec(`DELETE FROM participant`)
	if err != nil {
		slog.Error("failed to delete participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	deleted, _ := res.RowsAffected()
	slog.Warn("participant data deleted", "count", deleted)

	http.Redirect(w, r, "/admin?key="+url.QueryEscape(r.FormValue("key")), http.StatusSeeOther)
}

// Export handles GET /admin/export
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !h.requireKey(w, r) {
		return
	}

	participants, err := h.loadParticipants()
	if err != nil {
		slog.Error("failed to load participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename=participants.csv`)
	if err := stats.WriteCSV(w, participants); err != nil {
		slog.Error("failed to write CSV export", "error", err)
	}
}

// StatsJSON handles GET /admin/stats.json
func (h *AdminHandler) StatsJSON(w http.ResponseWriter, r *http.Request) {
	if !h.requireKey(w, r) {
		return
	}

	participants, err := h.loadParticipants()
	if err != nil {
		slog.Error("failed to load participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats.Compute(participants))
}
