package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// RefreshTokenSize is the entropy of an opaque refresh token in bytes.
const RefreshTokenSize = 64

// GenerateToken returns size random bytes encoded as base64url without padding.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
