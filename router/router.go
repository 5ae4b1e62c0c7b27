// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/danielhkuo/ten-rounds/cliparse"
	"github.com/danielhkuo/ten-rounds/experiment"
	"github.com/danielhkuo/ten-rounds/handlers"
	"github.com/danielhkuo/ten-rounds/middleware"
	"github.com/danielhkuo/ten-rounds/models"
	"github.com/danielhkuo/ten-rounds/session"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sessions session.Store, rng experiment.Rand) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	exp := handlers.NewExperimentHandler(db, cfg, sessions, rng)
	adm := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			OK:   true,
			Time: time.Now().UTC(),
		})
	})

	// Participant flow
	mux.HandleFunc("GET /{$}", middleware.WithLogging(exp.Index))
	mux.HandleFunc("POST /start", middleware.WithLogging(exp.Start))
	mux.HandleFunc("GET /survey", middleware.WithLogging(exp.SurveyForm))
	mux.HandleFunc("POST /survey", middleware.WithLogging(exp.SubmitSurvey))
	mux.HandleFunc("GET /instructions", middleware.WithLogging(exp.Instructions))
	mux.HandleFunc("GET /round/{n}", middleware.WithLogging(exp.RoundForm))
	mux.HandleFunc("POST /round/{n}", middleware.WithLogging(exp.SubmitRound))
	mux.HandleFunc("GET /round/{n}/outcome", middleware.WithLogging(exp.Outcome))
	mux.HandleFunc("GET /results", middleware.WithLogging(exp.Results))

	// Admin surface (shared key required)
	mux.HandleFunc("GET /admin", middleware.WithLogging(adm.Dashboard))
	mux.HandleFunc("POST /admin/state", middleware.WithLogging(adm.SetState))
	mux.HandleFunc("POST /admin/reset", middleware.WithLogging(adm.Reset))
	mux.HandleFunc("GET /admin/export", middleware.WithLogging(adm.Export))
	mux.HandleFunc("GET /admin/stats.json", middleware.WithLogging(adm.StatsJSON))

	return mux
}
