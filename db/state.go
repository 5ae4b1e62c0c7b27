// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/ten-rounds/models"
)

// EnsureState returns the singleton experiment configuration row, creating it
// open with the given title at first boot. The row is never deleted; admin
// actions only toggle is_open.
func EnsureState(db *sql.DB, title string) (models.ExperimentState, error) {
	var st models.ExperimentState
	err := db.QueryRow(`
		SELECT id, is_open, title, created_at FROM experiment_state WHERE id = 1
	`).Scan(&st.ID, &st.IsOpen, &st.Title, &st.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		st = models.ExperimentState{ID: 1, IsOpen: true, Title: title, CreatedAt: time.Now().UTC()}
		_, err = db.Exec(`
			INSERT INTO experiment_state (id, is_open, title, created_at)
			VALUES (1, TRUE, $1, $2)
		`, st.Title, st.CreatedAt)
		if err != nil {
			return models.ExperimentState{}, fmt.Errorf("failed to create experiment state: %w", err)
		}
		return st, nil
	}
	if err != nil {
		return models.ExperimentState{}, fmt.Errorf("failed to query experiment state: %w", err)
	}
	return st, nil
}

// SetOpen toggles the experiment gate. Last write wins; the row is operated
// manually and infrequently.
func SetOpen(db *sql.DB, open bool) error {
	_, err := db.Exec(`UPDATE experiment_state SET is_open = $1 WHERE id = 1`, open)
	if err != nil {
		return fmt.Errorf("failed to update experiment state: %w", err)
	}
	return nil
}
