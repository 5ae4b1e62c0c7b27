// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package experiment

import (
	"math/rand/v2"
	"sort"

	"github.com/danielhkuo/ten-rounds/models"
)

// NumRounds is the fixed length of a completed round sequence.
const NumRounds = 10

// Rand is the randomness provider injected into outcome draws. It is
// satisfied by math/rand/v2 and by deterministic test stubs.
type Rand interface {
	IntN(n int) int
}

type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }

// System is the process-wide randomness provider used outside tests.
// The top-level math/rand/v2 source is safe for concurrent use.
var System Rand = systemRand{}

// DrawChosenRound picks the secret paying round uniformly from 1..NumRounds.
func DrawChosenRound(rng Rand) int {
	return 1 + rng.IntN(NumRounds)
}

// Flip draws a fair binary outcome, independent of x and of all history.
func Flip(rng Rand) bool {
	return rng.IntN(2) == 0
}

// Wealth computes the payoff of a single round under its realized outcome.
// For x in [0,100] the result lies in [0,250]: 100-x on a loss, 100+1.5x on
// a win.
func Wealth(x int, win bool) float64 {
	w := 100 - float64(x)
	if win {
		w += 2.5 * float64(x)
	}
	return w
}

// ClampX coerces a committed amount into [0,100].
func ClampX(x int) int {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}

// FindRound returns the record for round n, if present.
func FindRound(rounds []models.RoundRecord, n int) (models.RoundRecord, bool) {
	for _, r := range rounds {
		if r.Round == n {
			return r, true
		}
	}
	return models.RoundRecord{}, false
}

// UpsertRound replaces the record matching rec.Round or appends it, then
// returns the sequence sorted by round number. Round numbers stay unique, so
// the sequence never exceeds NumRounds entries.
func UpsertRound(rounds []models.RoundRecord, rec models.RoundRecord) []models.RoundRecord {
	replaced := false
	for i, r := range rounds {
		if r.Round == rec.Round {
			rounds[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		rounds = append(rounds, rec)
	}
	sort.Slice(rounds, func(i, j int) bool { return rounds[i].Round < rounds[j].Round })
	return rounds
}

// FirstMissingRound returns the lowest round number in 1..NumRounds with no
// record, or 0 when the sequence is complete.
func FirstMissingRound(rounds []models.RoundRecord) int {
	present := [NumRounds + 1]bool{}
	for _, r := range rounds {
		if r.Round >= 1 && r.Round <= NumRounds {
			present[r.Round] = true
		}
	}
	for n := 1; n <= NumRounds; n++ {
		if !present[n] {
			return n
		}
	}
	return 0
}

// Summary is the finalization result computed from a complete sequence.
type Summary struct {
	ChosenRound int
	AverageX    float64
	FinalPayoff float64
}

// Summarize computes the finalization values: the mean committed amount and
// the wealth of the secretly chosen round. A chosen round outside 1..NumRounds
// falls back to round 1; the state machine always draws one at session start,
// so the fallback is a guard, not a designed path.
func Summarize(rounds []models.RoundRecord, chosenRound int) Summary {
	if chosenRound < 1 || chosenRound > NumRounds {
		chosenRound = 1
	}
	var sum float64
	for _, r := range rounds {
		sum += float64(r.X)
	}
	avg := 0.0
	if len(rounds) > 0 {
		avg = sum / float64(len(rounds))
	}
	payoff := 0.0
	if rec, ok := FindRound(rounds, chosenRound); ok {
		payoff = rec.Wealth
	}
	return Summary{ChosenRound: chosenRound, AverageX: avg, FinalPayoff: payoff}
}
