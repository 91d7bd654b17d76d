// Package password derives and verifies credential hashes with scrypt.
// Parameters follow the interactive-login recommendation; verification
// compares in constant time so timing never reveals how close a guess was.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN    = 32768
	scryptR    = 8
	scryptP    = 1
	saltLen    = 16
	derivedLen = 32
)

// Hash derives a key from the plaintext with a fresh random salt. Both the
// hash and the salt must be persisted to verify later.
func Hash(plaintext string) (hash, salt []byte, err error) {
	if plaintext == "" {
		return nil, nil, fmt.Errorf("password is required")
	}

	salt = make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("read salt: %w", err)
	}

	hash, err = scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, derivedLen)
	if err != nil {
		return nil, nil, fmt.Errorf("derive key: %w", err)
	}

	return hash, salt, nil
}

// Verify reports whether plaintext derives to hash under salt. It always
// performs the full derivation, even for malformed inputs.
func Verify(plaintext string, hash, salt []byte) bool {
	derived, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, derivedLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(derived, hash) == 1
}
