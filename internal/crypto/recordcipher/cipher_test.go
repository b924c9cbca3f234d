package recordcipher

import (
	"bytes"
	"errors"
	"testing"

	pkgcrypto "github.com/bduniv/gradevault/internal/crypto"
	"github.com/bduniv/gradevault/internal/errs"
)

func newCipher(t *testing.T) *Cipher {
	t.Helper()
	key, err := pkgcrypto.RandBytes(KeyLen)
	if err != nil {
		t.Fatalf("RandBytes: %v", err)
	}
	c, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_BadKeyLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 16, KeyLen - 1, KeyLen + 1} {
		if _, err := New(make([]byte, n)); err == nil {
			t.Fatalf("New with %d-byte key must fail", n)
		}
	}
}

func TestSealOpen_Roundtrip(t *testing.T) {
	t.Parallel()
	c := newCipher(t)

	for _, pt := range [][]byte{{}, []byte("88"), []byte("a longer grade comment"), bytes.Repeat([]byte{0xff}, 4096)} {
		sealed, err := c.Seal(pt)
		if err != nil {
			t.Fatalf("Seal: %v", err)
		}
		got, err := c.Open(sealed)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if !bytes.Equal(got, pt) {
			t.Fatalf("roundtrip mismatch: got %q want %q", got, pt)
		}
	}
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	t.Parallel()
	c := newCipher(t)

	pt := []byte("92")
	a, err := c.Seal(pt)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	b, err := c.Seal(pt)
	if err != nil {
		t.Fatalf("Seal(2): %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("two seals of the same plaintext are equal — nonce reuse")
	}
}

func TestOpen_TamperedOrMalformed(t *testing.T) {
	t.Parallel()
	c := newCipher(t)

	sealed, err := c.Seal([]byte("95"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	// flip one bit anywhere in the blob
	for _, i := range []int{0, len(sealed) / 2, len(sealed) - 1} {
		bad := append([]byte(nil), sealed...)
		bad[i] ^= 0x01
		if _, err := c.Open(bad); !errors.Is(err, errs.ErrDecryptFailed) {
			t.Fatalf("Open(flipped bit at %d): want ErrDecryptFailed, got %v", i, err)
		}
	}

	for _, blob := range [][]byte{nil, {}, []byte("short"), sealed[:10]} {
		if _, err := c.Open(blob); !errors.Is(err, errs.ErrDecryptFailed) {
			t.Fatalf("Open(malformed len %d): want ErrDecryptFailed, got %v", len(blob), err)
		}
	}
}

func TestOpen_WrongKey(t *testing.T) {
	t.Parallel()

	c1 := newCipher(t)
	c2 := newCipher(t)

	sealed, err := c1.Seal([]byte("secret"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := c2.Open(sealed); !errors.Is(err, errs.ErrDecryptFailed) {
		t.Fatalf("Open with different key: want ErrDecryptFailed, got %v", err)
	}
}
