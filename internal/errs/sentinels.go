// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail indicates a signup with an already-registered email.
	ErrDuplicateEmail = errors.New("duplicate email")

	// ErrWeakPassword indicates the password does not meet the minimum policy.
	ErrWeakPassword = errors.New("weak password")

	// ErrUnauthorized indicates failed authentication. Deliberately generic:
	// callers cannot tell a missing account from a wrong password.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotAuthenticated indicates record access without a live session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrForbidden indicates the session's role does not permit the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrDecryptFailed indicates malformed, tampered, or wrong-key ciphertext.
	ErrDecryptFailed = errors.New("decryption failed")

	// ErrKeyUnavailable indicates persisted key material exists but is unusable.
	// Fatal: regenerating the key would orphan every stored record.
	ErrKeyUnavailable = errors.New("key unavailable")
)
