// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin-key verification and cookie signing.

# Admin Key

The admin surface is guarded by one shared static secret, compared in
constant time:

	err := auth.ValidateAdminKey(providedKey, cfg.AdminKey)

When no secret is configured the check rejects everything. The admin routes
therefore fail closed on a misconfigured deployment instead of opening up.

# Cookie Signing

Session cookies carry "sid.sig" where sig is an HMAC-SHA256 of the session ID
under the session secret, URL-safe base64 without padding:

	sig := auth.SignValue(sid, secret)
	err := auth.VerifyValue(sid, sig, secret)

A forged or truncated cookie fails verification and is treated as no session.

# Random IDs

GenerateID returns a random hex string of the requested byte length. Session
IDs come from it; participant IDs use a UUID so exported rows carry a
conventional identifier shape.
*/
package auth
