// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Response Helpers

JSONResponse and ErrorResponse write JSON bodies; the participant-facing
pages render HTML instead and only use these for the admin/health surface.

# Form Coercion

FormInt and FormIntPtr implement the silent-coercion rule for numeric form
fields: malformed or missing input becomes a safe default (or nil), never a
validation error shown to the participant.

# Client IP

GetClientIP resolves the client address behind proxies (X-Forwarded-For,
X-Real-IP, RemoteAddr).
*/
package middleware
