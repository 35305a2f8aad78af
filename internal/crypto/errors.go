package crypto

import "errors"

// ErrEntropy is returned by [PasswordHasher.Hash] when the random source
// fails to produce a salt. The process cannot safely issue new digests.
var ErrEntropy = errors.New("failed to read random salt")
