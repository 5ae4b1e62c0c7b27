// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and the experiment-state
singleton.

# Schema Creation

CreateSchema initializes all required tables for the configured dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Both dialects share query text: lib/pq and modernc.org/sqlite both accept
$N placeholders, so only the DDL differs (JSONB vs TEXT for the embedded
round sequence, DOUBLE PRECISION vs REAL).

# Tables

  - experiment_state: singleton configuration row (id fixed at 1)
  - participant: one row per completed session, round sequence embedded
    as a JSON array

# Experiment State

EnsureState creates the singleton row open at first boot and returns it on
every later call. SetOpen flips the gate that guards POST /start.
*/
package db
