package common

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// ContentHash returns the hex SHA-256 of the parts joined by "|".
func ContentHash(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
