// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	schema := schemaSQLite
	if dialect == "postgres" {
		schema = schemaPostgres
	}
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaPostgres = `
-- Experiment configuration (singleton, id fixed at 1)
CREATE TABLE IF NOT EXISTS experiment_state (
    id INTEGER PRIMARY KEY,
    is_open BOOLEAN NOT NULL DEFAULT TRUE,
    title TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Participants (one row per completed session)
CREATE TABLE IF NOT EXISTS participant (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    name TEXT,
    gender TEXT,
    age INTEGER,
    race TEXT,
    chosen_round INTEGER NOT NULL,
    rounds JSONB NOT NULL,
    average_x DOUBLE PRECISION NOT NULL,
    final_payoff DOUBLE PRECISION NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_participant_created_at ON participant(created_at);
`

const schemaSQLite = `
-- Experiment configuration (singleton, id fixed at 1)
CREATE TABLE IF NOT EXISTS experiment_state (
    id INTEGER PRIMARY KEY,
    is_open BOOLEAN NOT NULL DEFAULT TRUE,
    title TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Participants (one row per completed session)
CREATE TABLE IF NOT EXISTS participant (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    name TEXT,
    gender TEXT,
    age INTEGER,
    race TEXT,
    chosen_round INTEGER NOT NULL,
    rounds TEXT NOT NULL,
    average_x REAL NOT NULL,
    final_payoff REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_participant_created_at ON participant(created_at);
`
