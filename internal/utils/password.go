package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// HashPassword derives a salted hash in the form "salt$digest".
func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	digest := sha256.Sum256(append(salt, []byte(password)...))
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(digest[:]), nil
}

// CheckPassword verifies a password against a stored "salt$digest" hash.
func CheckPassword(stored, password string) error {
	parts := strings.SplitN(stored, "$", 2)
	if len(parts) != 2 {
		return errors.New("malformed password hash")
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return errors.New("malformed password salt")
	}

	digest := sha256.Sum256(append(salt, []byte(password)...))
	if subtle.ConstantTimeCompare([]byte(hex.EncodeToString(digest[:])), []byte(parts[1])) != 1 {
		return errors.New("password mismatch")
	}
	return nil
}
