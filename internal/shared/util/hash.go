package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns the hex SHA-256 of data, used to spot duplicate uploads.
func HashContent(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
