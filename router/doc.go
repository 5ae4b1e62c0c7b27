// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the experiment server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, sessions, experiment.System)

# Endpoints

Health:

	GET /health

Participant flow (session cookie):

	GET  /                    - Landing page
	POST /start               - Begin a fresh session
	GET  /survey              - Demographic form
	POST /survey              - Submit demographics
	GET  /instructions        - Task instructions
	GET  /round/{n}           - Betting form for round n
	POST /round/{n}           - Commit an amount, draw the outcome
	GET  /round/{n}/outcome   - Outcome of round n
	GET  /results             - Finalize and show the payoff

Admin surface (requires key parameter):

	GET  /admin            - Dashboard
	POST /admin/state      - Open or close the experiment
	POST /admin/reset      - Delete all participant data
	GET  /admin/export     - CSV download
	GET  /admin/stats.json - Aggregate statistics

# Handler Initialization

The router creates handler instances with dependency injection:

	exp := handlers.NewExperimentHandler(db, cfg, sessions, rng)
	adm := handlers.NewAdminHandler(db, cfg)

The randomness provider is injected so tests can replay fixed draws.
*/
package router
