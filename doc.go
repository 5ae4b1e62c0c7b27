// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Ten Rounds experiment server.

Ten Rounds is a browser-based behavioral economics experiment. Each
participant plays ten betting rounds: they receive 100 tokens per round,
commit an amount x, and a fair coin decides whether they end the round with
100-x or 100+1.5x. One round, drawn secretly at session start, determines
the final payoff.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=experiment.db SESSION_SECRET=... go run .

Or with flags:

	go run . -p 3318 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): Connection string (file path for sqlite)
  - SESSION_SECRET (--session-secret): Secret for session cookie HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - REDIS_ADDR (--redis): Redis address for session storage; in-memory when empty
  - ADMIN_KEY (--admin-key): Shared admin key; admin surface rejects everything when empty
  - EXPERIMENT_TITLE: Title shown on the landing page

A .env file in the working directory is loaded at startup when present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (participant flow, admin surface)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, JSON helpers, form coercion
  - models: Domain and response types
  - experiment: Outcome draws, wealth formula, round sequences
  - session: Signed-cookie sessions backed by Redis or memory
  - stats: Aggregation and CSV export
  - views: Embedded HTML templates
  - auth: Key validation and cookie signing
  - db: Schema creation and experiment state
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
