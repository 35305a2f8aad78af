// Package crypto implements the credential hasher: it turns plaintext
// passwords into storable salted digests and verifies passwords against them.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks password digests.
//
// A digest is the salt and the derived key concatenated and encoded as one
// printable string. The salt is freshly random on every Hash call, so the
// same password never produces the same digest twice.
type PasswordHasher interface {
	// Hash returns a new digest of password. It fails only when the system
	// random source cannot supply a salt ([ErrEntropy]).
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. The derived keys are
	// compared in constant time. A malformed digest is a mismatch, never an
	// error or panic.
	Verify(password, digest string) bool
}
