// Package keystore loads or generates the process-wide encryption key and
// owns its persistence.
package keystore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	pkgcrypto "github.com/bduniv/gradevault/internal/crypto"
	"github.com/bduniv/gradevault/internal/errs"
)

// Store manages one durable key-material file holding raw key bytes.
// Concurrent first-run initialization persists exactly one key: in-process
// callers serialize on the mutex, and the create itself is O_EXCL so a
// second process losing the race reads the winner's key instead of
// clobbering it.
type Store struct {
	mu   sync.Mutex
	path string
}

// New returns a Store over the given key file path.
func New(path string) *Store { return &Store{path: path} }

// LoadOrCreate returns the persisted key, generating and persisting a fresh
// size-byte key on first run. Idempotent across process restarts. Existing
// but unreadable or wrong-length material fails with errs.ErrKeyUnavailable;
// a new key is never generated over it, since that would orphan every
// record sealed under the old one.
func (s *Store) LoadOrCreate(size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := s.read(size)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	key, err = pkgcrypto.RandBytes(size)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		// Another process created the file first; use its key.
		return s.read(size)
	}
	if err != nil {
		return nil, fmt.Errorf("keystore: create %s: %w", s.path, err)
	}
	if _, err := f.Write(key); err != nil {
		f.Close()
		return nil, fmt.Errorf("keystore: write %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("keystore: close %s: %w", s.path, err)
	}
	return key, nil
}

// read loads and validates existing key material. A missing file is
// reported as fs.ErrNotExist; anything else wrong with the material is
// errs.ErrKeyUnavailable.
func (s *Store) read(size int) ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrKeyUnavailable, err)
	}
	if len(b) != size {
		return nil, fmt.Errorf("%w: key file %s holds %d bytes, want %d",
			errs.ErrKeyUnavailable, s.path, len(b), size)
	}
	return b, nil
}
