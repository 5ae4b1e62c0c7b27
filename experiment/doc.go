// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package experiment implements the round outcome engine and finalization math.

# Outcome Engine

Flip draws a fair boolean with probability 0.5, independent of the committed
amount and of every earlier draw. Wealth applies the payoff formula:

	wealth = 100 - x + (win ? 2.5x : 0)

A round's outcome is redrawn on every submission; nothing is fixed until the
results view reads the sequence.

# Randomness

All draws go through the Rand interface. Production wiring passes
experiment.System (math/rand/v2); tests pass fixed sequences. Cryptographic
strength is not required for these draws.

# Finalization

Summarize computes the mean committed amount and the wealth of the secretly
chosen round from a complete sequence. FirstMissingRound backs the navigation
guard that sends incomplete sessions to their next round.
*/
package experiment
