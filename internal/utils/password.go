package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/sanchalak/sanchalak-api/internal/constants"
)

// GeneratePassword generates a random one-time password for a newly
// added team member. It is disclosed once over email and never stored
// in plaintext.
func GeneratePassword() (string, error) {
	bytes := make([]byte, constants.GeneratedPasswordBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(bytes), nil
}
