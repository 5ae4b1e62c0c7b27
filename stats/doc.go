// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats aggregates persisted participants for the admin surface.

All functions are pure over []models.Participant; handlers load the rows and
pass them in. Aggregates are recomputed on every request - there is no cache
to invalidate.

# Aggregations

  - Flatten: one Decision per participant-round pair, with display defaults
    (name falls back to an ID prefix, gender/race to "Unspecified")
  - Histogram: half-open [b, b+width) buckets over x, sparse, labeled
    "b–(b+width-1)"
  - GroupAverages: mean x per group label, sorted by label
  - AgeBucket: <20, 20–24, 25–29, 30–39, 40+, Unknown
  - NamesByBin: distinct display names per 10-wide bin

# CSV Export

WriteCSV flattens each participant's ten rounds into fixed x_n / win_n /
wealth_n / time_ms_n columns. Rounds a participant never reached produce
empty cells, not errors.
*/
package stats
