// Package recordcipher seals and opens record values with authenticated
// symmetric encryption under the single process-wide key.
package recordcipher

import (
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	pkgcrypto "github.com/bduniv/gradevault/internal/crypto"
	"github.com/bduniv/gradevault/internal/errs"
)

// KeyLen is the required key length in bytes.
const KeyLen = chacha20poly1305.KeySize

// Cipher performs XChaCha20-Poly1305 sealing with a random nonce per call,
// so identical plaintexts never produce equal ciphertexts. Safe for
// concurrent use.
type Cipher struct {
	aead cipher.AEAD
}

// New constructs a Cipher from a KeyLen-byte key.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeyLen {
		return nil, fmt.Errorf("record cipher: key must be %d bytes, got %d", KeyLen, len(key))
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead}, nil
}

// Seal encrypts plaintext and returns nonce || ciphertext.
func (c *Cipher) Seal(plaintext []byte) ([]byte, error) {
	nonce, err := pkgcrypto.RandBytes(chacha20poly1305.NonceSizeX)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(nonce)+len(plaintext)+c.aead.Overhead())
	out = append(out, nonce...)
	out = append(out, c.aead.Seal(nil, nonce, plaintext, nil)...)
	return out, nil
}

// Open decrypts a blob produced by Seal. Malformed, tampered, or
// wrong-key input fails with errs.ErrDecryptFailed; partial plaintext is
// never returned.
func (c *Cipher) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < chacha20poly1305.NonceSizeX {
		return nil, errs.ErrDecryptFailed
	}
	nonce := sealed[:chacha20poly1305.NonceSizeX]
	ct := sealed[chacha20poly1305.NonceSizeX:]
	pt, err := c.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, errs.ErrDecryptFailed
	}
	return pt, nil
}
