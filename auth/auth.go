// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidCookie   = errors.New("invalid session cookie")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ValidateAdminKey compares the provided key against the configured shared
// secret in constant time. An empty configured secret means the admin surface
// is disabled: every key is rejected (fail closed, never fail open).
func ValidateAdminKey(provided, configured string) error {
	if configured == "" {
		return ErrInvalidAdminKey
	}
	if !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// SignValue returns the HMAC-SHA256 signature of value under secret,
// URL-safe base64 encoded without padding.
func SignValue(value, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(value))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// VerifyValue checks a signature produced by SignValue.
func VerifyValue(value, sig, secret string) error {
	expected := SignValue(value, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return ErrInvalidCookie
	}
	return nil
}
