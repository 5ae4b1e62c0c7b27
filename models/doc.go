// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, session, aggregate and response types.

# Domain Types

  - ExperimentState: singleton configuration row (open/closed gate, title)
  - Participant: durable record, written once per completed session
  - RoundRecord: one decision (round, x, win, wealth, time_ms), embedded as JSON
  - SessionState: transient per-browser progress, held in the session store

# Legacy Outcome Encoding

Early deployments stored round outcomes as "flip": "heads"/"tails".
RoundRecord.UnmarshalJSON reads that encoding transparently; all new writes
use the boolean "win" field.

# Aggregate Types

Decision is the flattened participant-round pair the stats package operates
on. HistogramBin, GroupAverage, NameBin and StatsResponse shape the
/admin/stats.json payload.
*/
package models
