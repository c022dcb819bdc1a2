package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ConfirmationTokenGenerator produces the opaque tokens mailed to
// client-created accounts pending confirmation.
type ConfirmationTokenGenerator struct{}

func NewConfirmationTokenGenerator() *ConfirmationTokenGenerator {
	return &ConfirmationTokenGenerator{}
}

func (g *ConfirmationTokenGenerator) Generate() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate confirmation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
