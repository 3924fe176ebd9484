package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// unusablePassword is stored for accounts created without a password.
// It is not a valid bcrypt hash, so no plaintext ever matches it.
const unusablePassword = "!"

// HashPassword returns the bcrypt hash of password using the given cost.
// A cost outside bcrypt's range falls back to [bcrypt.DefaultCost].
// An empty password produces an unusable hash.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return unusablePassword, nil
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	if hash == "" || hash == unusablePassword || password == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
