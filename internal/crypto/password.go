package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Digest parameters. They are shared by Hash and Verify: changing any of
// them invalidates every digest already stored.
const (
	saltSize   = 16
	keySize    = 32
	iterations = 100_000
	digestSize = saltSize + keySize
)

// DummyDigest is a well-formed digest of an all-zero salt and key. Verifying
// against it costs a full key derivation, which lets callers spend the same
// time on unknown accounts as on known ones.
var DummyDigest = base64.StdEncoding.EncodeToString(make([]byte, digestSize))

// pbkdf2Hasher is the PBKDF2-HMAC-SHA256 implementation of [PasswordHasher].
// Digests are base64(salt ‖ key) with the standard padded alphabet.
type pbkdf2Hasher struct {
	// random supplies salt bytes. It is crypto/rand outside of tests.
	random io.Reader
}

// NewPasswordHasher returns the default [PasswordHasher].
// It is stateless and safe for concurrent use.
func NewPasswordHasher() PasswordHasher {
	return &pbkdf2Hasher{random: rand.Reader}
}

// Hash implements [PasswordHasher].
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	digest := make([]byte, 0, digestSize)
	digest = append(digest, salt...)
	digest = append(digest, deriveKey(password, salt)...)

	return base64.StdEncoding.EncodeToString(digest), nil
}

// Verify implements [PasswordHasher].
func (h *pbkdf2Hasher) Verify(password, digest string) bool {
	decoded, err := base64.StdEncoding.DecodeString(digest)
	if err != nil || len(decoded) != digestSize {
		return false
	}

	salt, storedKey := decoded[:saltSize], decoded[saltSize:]

	return subtle.ConstantTimeCompare(deriveKey(password, salt), storedKey) == 1
}

func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)
}
