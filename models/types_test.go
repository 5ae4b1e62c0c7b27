// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRoundRecordDecodesBothOutcomeEncodings(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantWin bool
	}{
		{
			name:    "boolean win true",
			data:    `{"round": 3, "x": 30, "win": true, "wealth": 145, "time_ms": 1200}`,
			wantWin: true,
		},
		{
			name:    "boolean win false",
			data:    `{"round": 3, "x": 30, "win": false, "wealth": 70, "time_ms": 1200}`,
			wantWin: false,
		},
		{
			name:    "legacy flip heads",
			data:    `{"round": 3, "x": 30, "flip": "heads", "wealth": 145, "time_ms": 1200}`,
			wantWin: true,
		},
		{
			name:    "legacy flip tails",
			data:    `{"round": 3, "x": 30, "flip": "tails", "wealth": 70, "time_ms": 1200}`,
			wantWin: false,
		},
		{
			name:    "no outcome field",
			data:    `{"round": 3, "x": 30, "wealth": 70, "time_ms": 1200}`,
			wantWin: false,
		},
		{
			name: "boolean wins over legacy flip",
			data: `{"round": 3, "x": 30, "win": false, "flip": "heads", "wealth": 70}`,
			// The boolean is the current encoding; flip is read only when
			// win is absent.
			wantWin: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec RoundRecord
			if err := json.Unmarshal([]byte(tt.data), &rec); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if rec.Win != tt.wantWin {
				t.Errorf("Win = %v, want %v", rec.Win, tt.wantWin)
			}
			if rec.Round != 3 || rec.X != 30 {
				t.Errorf("Round/X = %d/%d, want 3/30", rec.Round, rec.X)
			}
		})
	}
}

func TestRoundRecordAlwaysWritesWin(t *testing.T) {
	legacy := `{"round": 1, "x": 50, "flip": "heads", "wealth": 175, "time_ms": 900}`

	var rec RoundRecord
	if err := json.Unmarshal([]byte(legacy), &rec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(out), "flip") {
		t.Errorf("re-encoded record still carries flip: %s", out)
	}
	if !strings.Contains(string(out), `"win":true`) {
		t.Errorf("expected boolean win in re-encoded record, got: %s", out)
	}
}

func TestParticipantDisplayName(t *testing.T) {
	name := "Ada"
	tests := []struct {
		name string
		p    Participant
		want string
	}{
		{"named", Participant{ID: "abcdef123456", Name: &name}, "Ada"},
		{"anonymous", Participant{ID: "abcdef123456"}, "abcdef"},
		{"short id", Participant{ID: "ab12"}, "ab12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
