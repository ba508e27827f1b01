// Package cryptox implements the password-hashing scheme used by the auth
// service: an argon2id-derived key from (password, salt), reduced to a
// fixed-size verifier that is what actually gets stored.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the number of random bytes generated per account.
const SaltSize = 32

// argon2id parameters. Changing them invalidates every stored verifier,
// so treat them as part of the on-disk format.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// DeriveKey stretches a password with the account salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// MakeVerifier reduces a derived key to the value stored in the users table.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}
