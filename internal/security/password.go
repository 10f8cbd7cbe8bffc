// Package security provides password hashing and verification on top of
// argon2id.
package security

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/matthewhartstonge/argon2"
)

var hashConfig = argon2.DefaultConfig()

// HashPassword hashes a plaintext password with a per-call random salt and
// returns the encoded hash string.
func HashPassword(password string) (string, error) {
	encoded, err := hashConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether the plaintext candidate matches the encoded
// hash.
func VerifyPassword(password, encodedHash string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}

// RandomPassword returns a high-entropy password for accounts provisioned
// through an external identity provider. It is hashed and never disclosed, so
// such accounts cannot sign in with local credentials.
func RandomPassword() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}
