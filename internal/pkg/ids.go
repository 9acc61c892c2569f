package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// GenerateGameID - generates a unique identifier for the game.
func GenerateGameID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return id.String(), nil
}

// GenerateUserID - generates a unique identifier for the user.
func GenerateUserID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate user id: %w", err)
	}

	return id.String(), nil
}

// GenerateNewSessionID - generates a random url-safe token, used for OAuth state.
func GenerateNewSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
