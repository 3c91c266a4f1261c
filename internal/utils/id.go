package utils

import "github.com/google/uuid"

// GenerateID returns a new unique job identifier.
func GenerateID() string {
	return uuid.NewString()
}
