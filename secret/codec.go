package secret

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"
)

// SaltLength is the number of random bytes drawn for every encoded secret.
// It is part of the stored record contract and must not change.
const SaltLength = 32

// Secret is the salted-hash representation of a credential. The JSON field
// names match the account record layout in the store.
type Secret struct {
	Hash []byte `json:"hash"`
	Salt []byte `json:"salt"`
}

// Encode derives a [Secret] from plaintext using salt drawn from rand.
//
// rand must be a cryptographically secure source ([crypto/rand.Reader] or a
// per-task generator seeded from it). Empty plaintext is permitted: externally
// authenticated accounts store an empty-string credential so that record
// shapes stay uniform, and the salt is drawn regardless.
func Encode(rand io.Reader, plaintext string) (Secret, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand, salt); err != nil {
		return Secret{}, fmt.Errorf("draw salt: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(plaintext))
	h.Write(salt)

	return Secret{Hash: h.Sum(nil), Salt: salt}, nil
}

// Verify reports whether candidate is the plaintext s was encoded from.
// The comparison is constant-time over the hash bytes.
func Verify(s Secret, candidate string) bool {
	h := sha256.New()
	h.Write([]byte(candidate))
	h.Write(s.Salt)

	return subtle.ConstantTimeCompare(s.Hash, h.Sum(nil)) == 1
}
