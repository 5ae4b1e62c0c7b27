// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides shared test helpers: an in-memory SQLite database
// with the full schema, a deterministic randomness provider, form-encoded
// request builders and response assertions.
package testutil
