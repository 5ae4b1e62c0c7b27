// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session stores transient per-participant progress and moves the
session ID through a signed browser cookie.

# Store

Store is a small key-value interface over SessionState. RedisStore is the
production implementation: one JSON blob per session under
"tenrounds:session:<sid>" with a 24h TTL. MemoryStore backs development
without Redis and the test suite; it serializes through JSON as well so both
implementations share copy semantics.

# Cookie Transport

The cookie value is "sid.sig" where sig is an HMAC of the session ID under
the configured session secret. ReadCookie treats anything that fails
verification as no session at all, which feeds the navigation guards
(redirect to the entry screen, never an error page).

Session state is destroyed on /start (fresh session) and naturally expires
with the TTL; a finalized session is superseded by the durable participant
row.
*/
package session
