package pkg

import "github.com/google/uuid"

// GenerateSessionID - returns a new random session identifier.
func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateResultID - returns a new random identifier for a game history entry.
func GenerateResultID() string {
	return uuid.NewString()
}
