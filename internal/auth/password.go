// Package auth hashes and verifies admin passwords.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"society/internal/domain"
)

const (
	saltBytes = 16
	keyBytes  = 32
	memoryKiB = 64 * 1024
	passes    = 1
	threads   = 4

	// MinPasswordLength is the shortest password accepted for new accounts.
	MinPasswordLength = 8

	scheme = "argon2id"
)

var errMalformedHash = errors.New("auth: malformed password hash")

// HashPassword derives an argon2id key for password and encodes it with its salt
// as "argon2id$<salt>$<key>".
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, MinPasswordLength)
	}
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("auth: read salt: %w", err)
	}
	key := derive(password, salt)
	return strings.Join([]string{
		scheme,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	}, "$"), nil
}

// VerifyPassword reports whether password matches the encoded hash.
func VerifyPassword(encoded, password string) bool {
	salt, want, err := decode(encoded)
	if err != nil {
		return false
	}
	got := derive(password, salt)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, passes, memoryKiB, threads, keyBytes)
}

func decode(encoded string) ([]byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != scheme {
		return nil, nil, errMalformedHash
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil || len(salt) != saltBytes {
		return nil, nil, errMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(key) != keyBytes {
		return nil, nil, errMalformedHash
	}
	return salt, key, nil
}
