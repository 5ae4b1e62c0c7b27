// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/danielhkuo/ten-rounds/experiment"
	"github.com/danielhkuo/ten-rounds/models"
)

// CSVHeader lists the export columns: demographic and summary fields, then
// the ten rounds flattened into x_n, win_n, wealth_n, time_ms_n.
func CSVHeader() []string {
	header := []string{
		"id", "created_at", "name", "gender", "age", "race",
		"chosen_round", "average_x", "final_payoff",
	}
	for _, prefix := range []string{"x", "win", "wealth", "time_ms"} {
		for n := 1; n <= experiment.NumRounds; n++ {
			header = append(header, fmt.Sprintf("%s_%d", prefix, n))
		}
	}
	return header
}

// WriteCSV writes one row per participant in the given order (callers pass
// rows sorted by creation time). Missing round data yields empty cells.
func WriteCSV(w io.Writer, participants []models.Participant) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, p := range participants {
		if err := cw.Write(participantRow(p)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func participantRow(p models.Participant) []string {
	name := ""
	if p.Name != nil {
		name = *p.Name
	}
	age := ""
	if p.Age != nil {
		age = strconv.Itoa(*p.Age)
	}

	row := []string{
		p.ID,
		p.CreatedAt.UTC().Format(time.RFC3339),
		name,
		p.Gender,
		age,
		p.Race,
		strconv.Itoa(p.ChosenRound),
		formatFloat(p.AverageX),
		formatFloat(p.FinalPayoff),
	}

	var xs, wins, wealths, times [experiment.NumRounds]string
	for _, r := range p.Rounds {
		if r.Round < 1 || r.Round > experiment.NumRounds {
			continue
		}
		i := r.Round - 1
		xs[i] = strconv.Itoa(r.X)
		wins[i] = strconv.FormatBool(r.Win)
		wealths[i] = formatFloat(r.Wealth)
		times[i] = strconv.Itoa(r.TimeMs)
	}
	row = append(row, xs[:]...)
	row = append(row, wins[:]...)
	row = append(row, wealths[:]...)
	row = append(row, times[:]...)
	return row
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
