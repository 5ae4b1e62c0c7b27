// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"time"
)

// Admin state actions
const (
	ActionOpen  = "open"
	ActionClose = "close"
)

// Domain types

// ExperimentState is the singleton configuration row (id fixed at 1).
type ExperimentState struct {
	ID        int       `json:"id"`
	IsOpen    bool      `json:"is_open"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// RoundRecord is one decision inside a participant's round sequence.
// It is embedded in the participant row as JSON, never stored on its own.
type RoundRecord struct {
	Round  int     `json:"round"`
	X      int     `json:"x"`
	Win    bool    `json:"win"`
	Wealth float64 `json:"wealth"`
	TimeMs int     `json:"time_ms"`
}

// UnmarshalJSON accepts both the current boolean outcome encoding and the
// legacy textual one ("flip": "heads"/"tails") found in older rows. New
// records are always written with "win".
func (r *RoundRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Round  int     `json:"round"`
		X      int     `json:"x"`
		Win    *bool   `json:"win"`
		Flip   string  `json:"flip"`
		Wealth float64 `json:"wealth"`
		TimeMs int     `json:"time_ms"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Round = raw.Round
	r.X = raw.X
	r.Wealth = raw.Wealth
	r.TimeMs = raw.TimeMs
	if raw.Win != nil {
		r.Win = *raw.Win
	} else {
		r.Win = raw.Flip == "heads"
	}
	return nil
}

// Demographics holds the optional survey fields. Name and Age are nil when
// the participant left them blank; Gender and Race default to empty string.
type Demographics struct {
	Name   *string `json:"name"`
	Gender string  `json:"gender"`
	Age    *int    `json:"age"`
	Race   string  `json:"race"`
}

// Participant is the durable record written once per completed session.
type Participant struct {
	ID          string        `json:"id"`
	CreatedAt   time.Time     `json:"created_at"`
	Name        *string       `json:"name"`
	Gender      string        `json:"gender"`
	Age         *int          `json:"age"`
	Race        string        `json:"race"`
	ChosenRound int           `json:"chosen_round"`
	Rounds      []RoundRecord `json:"rounds"`
	AverageX    float64       `json:"average_x"`
	FinalPayoff float64       `json:"final_payoff"`
}

// DisplayName returns the participant's name, or a short ID prefix when the
// name was not provided.
func (p Participant) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	if len(p.ID) > 6 {
		return p.ID[:6]
	}
	return p.ID
}

// SessionState is the transient per-browser progress record. It lives in the
// session store only and is superseded by a Participant row at finalization.
type SessionState struct {
	ParticipantID string        `json:"participant_id"`
	ChosenRound   int           `json:"chosen_round"`
	Rounds        []RoundRecord `json:"rounds"`
	Demographics  Demographics  `json:"demographics"`
}

// Aggregate types

// Decision is one participant-round pair flattened for aggregation. Name,
// gender and race carry display defaults so groups never have empty labels.
type Decision struct {
	ParticipantID string  `json:"pid"`
	Name          string  `json:"name"`
	Gender        string  `json:"gender"`
	Age           *int    `json:"age"`
	Race          string  `json:"race"`
	Round         int     `json:"round"`
	X             int     `json:"x"`
	Win           bool    `json:"win"`
	Wealth        float64 `json:"wealth"`
}

type HistogramBin struct {
	Bin   string `json:"bin"`
	Count int    `json:"count"`
}

type GroupAverage struct {
	Group string  `json:"group"`
	AvgX  float64 `json:"avg_x"`
}

type NameBin struct {
	Bin   string   `json:"bin"`
	Names []string `json:"names"`
}

// StatsResponse is the payload of GET /admin/stats.json.
type StatsResponse struct {
	Hist5            []HistogramBin `json:"hist_5"`
	Hist10           []HistogramBin `json:"hist_10"`
	Hist20           []HistogramBin `json:"hist_20"`
	AvgByGender      []GroupAverage `json:"avg_by_gender"`
	AvgByAge         []GroupAverage `json:"avg_by_age"`
	AvgByRace        []GroupAverage `json:"avg_by_race"`
	NamesByBin10     []NameBin      `json:"names_by_bin_10"`
	DecisionCount    int            `json:"decision_count"`
	ParticipantCount int            `json:"participant_count"`
}

// Response types

type HealthResponse struct {
	OK   bool      `json:"ok"`
	Time time.Time `json:"time"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
