package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenKeyLength is the length of a token key in hex characters.
const TokenKeyLength = 40

// GenerateTokenKey returns a new random token key of [TokenKeyLength] hex characters.
func GenerateTokenKey() (string, error) {
	buf := make([]byte, TokenKeyLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating token key: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// IsValidTokenKey reports whether key has the shape of a generated token key.
func IsValidTokenKey(key string) bool {
	if len(key) != TokenKeyLength {
		return false
	}

	_, err := hex.DecodeString(key)
	return err == nil
}
