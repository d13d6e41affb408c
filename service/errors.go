// file: service/errors.go

package service

import "errors"

// Authentication failure kinds. Handlers map these onto HTTP statuses; the
// message shown to clients stays generic so it never discloses which check
// failed.
var (
	// ErrInvalidCredentials covers both an unknown login id and a wrong
	// password. The two cases must stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid id or password")

	// ErrInvalidToken is returned for malformed tokens, bad signatures and
	// tokens signed with the wrong key or algorithm.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a token's own expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrSessionNotFound is returned on refresh when no live session row
	// matches the presented token, subject and device.
	ErrSessionNotFound = errors.New("session not found")

	// ErrStoreUnavailable marks a transient persistence failure. It is the
	// only retryable kind and must never be conflated with the kinds above.
	ErrStoreUnavailable = errors.New("session store unavailable")
)
