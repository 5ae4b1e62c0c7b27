// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/ten-rounds/auth"
	"github.com/danielhkuo/ten-rounds/models"
)

// CookieName carries the signed session ID in the participant's browser.
const CookieName = "ten_rounds_sid"

// TTL bounds how long an unfinished session survives in the store.
const TTL = 24 * time.Hour

var ErrNotFound = errors.New("session not found")

// Store is the key-value session store holding transient SessionState.
// Implementations: RedisStore (production) and MemoryStore (dev, tests).
type Store interface {
	Get(ctx context.Context, sid string) (*models.SessionState, error)
	Put(ctx context.Context, sid string, state *models.SessionState) error
	Delete(ctx context.Context, sid string) error
}

// NewID allocates a fresh opaque session identifier. The ID is never shown
// to participants and carries no structure; a hex string suffices.
func NewID() string {
	sid, _ := auth.GenerateID(16)
	return sid
}

// Cookie builds the signed session cookie for sid. The value is "sid.sig";
// the signature binds the cookie to the configured session secret.
func Cookie(sid, secret string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    sid + "." + auth.SignValue(sid, secret),
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// SetCookie attaches the signed session cookie to the response.
func SetCookie(w http.ResponseWriter, sid, secret string) {
	http.SetCookie(w, Cookie(sid, secret))
}

// ClearCookie expires the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadCookie extracts and verifies the session ID from the request. A
// missing, malformed or forged cookie reads as no session.
func ReadCookie(r *http.Request, secret string) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	sid, sig, ok := strings.Cut(c.Value, ".")
	if !ok || sid == "" {
		return "", false
	}
	if err := auth.VerifyValue(sid, sig, secret); err != nil {
		return "", false
	}
	return sid, true
}
