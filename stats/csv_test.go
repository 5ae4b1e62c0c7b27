// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/danielhkuo/ten-rounds/experiment"
	"github.com/danielhkuo/ten-rounds/models"
)

func TestCSVHeader(t *testing.T) {
	header := CSVHeader()

	// 9 summary columns plus 4 series of 10 round columns.
	if len(header) != 9+4*experiment.NumRounds {
		t.Fatalf("expected %d columns, got %d", 9+4*experiment.NumRounds, len(header))
	}
	if header[0] != "id" || header[9] != "x_1" || header[len(header)-1] != "time_ms_10" {
		t.Errorf("unexpected column layout: first=%q tenth=%q last=%q", header[0], header[9], header[len(header)-1])
	}
}

func TestWriteCSVRowPerParticipant(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	name := "Alice"
	age := 22

	participants := []models.Participant{
		{
			ID:          "p1",
			CreatedAt:   created,
			Name:        &name,
			Gender:      "female",
			Age:         &age,
			Race:        "white",
			ChosenRound: 3,
			AverageX:    55,
			FinalPayoff: 130,
			Rounds: func() []models.RoundRecord {
				var rounds []models.RoundRecord
				for n := 1; n <= experiment.NumRounds; n++ {
					rounds = append(rounds, models.RoundRecord{
						Round: n, X: n * 10, Win: n == 3,
						Wealth: experiment.Wealth(n*10, n == 3),
						TimeMs: 1000 + n,
					})
				}
				return rounds
			}(),
		},
		{
			// Incomplete legacy row: only round 2 present.
			ID:          "p2",
			CreatedAt:   created.Add(time.Hour),
			ChosenRound: 1,
			Rounds:      []models.RoundRecord{{Round: 2, X: 40, Win: true, Wealth: 160}},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, participants); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	header, row1, row2 := rows[0], rows[1], rows[2]
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %q not found", name)
		return -1
	}

	if row1[col("id")] != "p1" || row1[col("name")] != "Alice" || row1[col("age")] != "22" {
		t.Errorf("unexpected summary cells: %v", row1[:9])
	}
	if row1[col("x_3")] != "30" || row1[col("win_3")] != "true" || row1[col("wealth_3")] != "145" {
		t.Errorf("unexpected round 3 cells: x=%q win=%q wealth=%q",
			row1[col("x_3")], row1[col("win_3")], row1[col("wealth_3")])
	}
	if row1[col("average_x")] != "55" || row1[col("final_payoff")] != "130" {
		t.Errorf("unexpected summary stats: avg=%q payoff=%q",
			row1[col("average_x")], row1[col("final_payoff")])
	}

	// Missing rounds are empty cells, present ones filled.
	if row2[col("x_1")] != "" || row2[col("win_1")] != "" {
		t.Errorf("expected empty cells for missing round 1, got x=%q win=%q",
			row2[col("x_1")], row2[col("win_1")])
	}
	if row2[col("x_2")] != "40" || row2[col("win_2")] != "true" {
		t.Errorf("expected round 2 cells filled, got x=%q win=%q",
			row2[col("x_2")], row2[col("win_2")])
	}
	if row2[col("name")] != "" {
		t.Errorf("expected empty name cell, got %q", row2[col("name")])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}
