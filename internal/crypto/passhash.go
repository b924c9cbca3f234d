// Package crypto implements password hashing, verification, and strength scoring.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (tuned for server-side hashing).
const (
	argonTime    uint32 = 3         // iterations
	argonMemory  uint32 = 64 * 1024 // 64 MB
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32

	saltLen = 16
)

// HashLen is the length of a well-formed hash blob: salt followed by the
// Argon2id digest.
const HashLen = saltLen + int(argonKeyLen)

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// HashPassword hashes password with a fresh random salt and returns a
// self-contained blob (salt || digest), so verification needs no separate
// salt lookup. Two calls on the same password yield different blobs.
func HashPassword(password []byte) ([]byte, error) {
	salt, err := RandBytes(saltLen)
	if err != nil {
		return nil, err
	}
	digest := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	out := make([]byte, 0, HashLen)
	out = append(out, salt...)
	out = append(out, digest...)
	return out, nil
}

// VerifyPassword reports whether password matches the stored blob. The
// comparison is constant-time. Malformed blobs verify as false; this
// function never panics on attacker-controlled input.
func VerifyPassword(password, stored []byte) bool {
	if len(stored) != HashLen {
		return false
	}
	salt := stored[:saltLen]
	got := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return subtle.ConstantTimeCompare(got, stored[saltLen:]) == 1
}
