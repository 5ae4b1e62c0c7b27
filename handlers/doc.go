// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the experiment.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - ExperimentHandler: The participant flow (start, survey, rounds, results)
  - AdminHandler: The coordinator surface (state, reset, export, stats)

ExperimentHandler additionally carries a session store and a randomness
provider, so outcome draws are deterministic in tests:

	exp := handlers.NewExperimentHandler(db, cfg, sessions, experiment.System)
	adm := handlers.NewAdminHandler(db, cfg)

# Participant Flow

A session walks a fixed sequence, each step redirecting to the next:

	POST /start               → Start (draws the secret paying round)
	GET/POST /survey          → SurveyForm / SubmitSurvey (all fields optional)
	GET /instructions         → Instructions
	GET/POST /round/{n}       → RoundForm / SubmitRound (n in 1..10)
	GET /round/{n}/outcome    → Outcome
	GET /results              → Results (finalizes into the participant table)

Requests without a valid session redirect to /, clearing any cookie whose
stored session has expired. Visiting /results with
rounds missing redirects to the first incomplete round. Finalization is an
upsert keyed on participant ID, so refreshing /results is harmless.

# Admin Surface

Every admin operation requires the shared key in the "key" form or query
parameter. With no key configured, all admin requests are rejected.

	GET /admin             → Dashboard
	POST /admin/state      → SetState (action=open|close)
	POST /admin/reset      → Reset (deletes all participants)
	GET /admin/export      → Export (CSV download)
	GET /admin/stats.json  → StatsJSON (aggregates from the stats package)
*/
package handlers
