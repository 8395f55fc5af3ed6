package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateInviteCode returns a random hex code for a new invited guest.
func GenerateInviteCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GenerateResetToken returns a random token for the password-reset flow.
func GenerateResetToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
