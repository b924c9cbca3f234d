// Package security holds the process-wide secrets behind one explicit object
// constructed at startup and passed to every component that needs it.
package security

import (
	"errors"

	"github.com/bduniv/gradevault/internal/crypto/recordcipher"
	"github.com/bduniv/gradevault/internal/keystore"
)

// Context carries the record cipher (built from the persisted encryption
// key) and the session signing secret. Immutable after construction, safe
// to share across concurrent requests.
type Context struct {
	cipher  *recordcipher.Cipher
	signKey []byte
}

// NewContext loads or creates the record key at keyPath and wires the
// cipher. signKey is the HS256 session signing secret and must be non-empty.
func NewContext(keyPath string, signKey []byte) (*Context, error) {
	if len(signKey) == 0 {
		return nil, errors.New("security: empty session signing key")
	}
	key, err := keystore.New(keyPath).LoadOrCreate(recordcipher.KeyLen)
	if err != nil {
		return nil, err
	}
	cipher, err := recordcipher.New(key)
	if err != nil {
		return nil, err
	}
	return &Context{cipher: cipher, signKey: signKey}, nil
}

// Cipher returns the record cipher.
func (c *Context) Cipher() *recordcipher.Cipher { return c.cipher }

// SignKey returns the session signing secret.
func (c *Context) SignKey() []byte { return c.signKey }
