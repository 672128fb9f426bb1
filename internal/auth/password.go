package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with the configured cost.
// Each call salts independently, so hashing the same input twice yields
// different encodings.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPasswordEncoding, err)
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its stored hash using the
// salt and cost embedded in the hash. A malformed hash is reported as a
// mismatch, never a panic.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
