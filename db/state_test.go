// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn := setupDB(t)

	// Second run must not fail.
	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("CreateSchema should be safe to call twice: %v", err)
	}
}

func TestEnsureStateCreatesSingleton(t *testing.T) {
	conn := setupDB(t)

	st, err := EnsureState(conn, "Test Experiment")
	if err != nil {
		t.Fatalf("EnsureState failed: %v", err)
	}
	if st.ID != 1 {
		t.Errorf("expected id 1, got %d", st.ID)
	}
	if !st.IsOpen {
		t.Error("new experiment state should be open")
	}
	if st.Title != "Test Experiment" {
		t.Errorf("expected title 'Test Experiment', got %q", st.Title)
	}

	// Second call returns the existing row, not a new one.
	again, err := EnsureState(conn, "Different Title")
	if err != nil {
		t.Fatalf("EnsureState failed on second call: %v", err)
	}
	if again.Title != "Test Experiment" {
		t.Errorf("expected existing title preserved, got %q", again.Title)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM experiment_state`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 state row, got %d", count)
	}
}

func TestSetOpen(t *testing.T) {
	conn := setupDB(t)

	if _, err := EnsureState(conn, "t"); err != nil {
		t.Fatal(err)
	}

	if err := SetOpen(conn, false); err != nil {
		t.Fatalf("SetOpen failed: %v", err)
	}
	st, err := EnsureState(conn, "t")
	if err != nil {
		t.Fatal(err)
	}
	if st.IsOpen {
		t.Error("expected experiment to be closed")
	}

	if err := SetOpen(conn, true); err != nil {
		t.Fatalf("SetOpen failed: %v", err)
	}
	st, _ = EnsureState(conn, "t")
	if !st.IsOpen {
		t.Error("expected experiment to be open again")
	}
}
