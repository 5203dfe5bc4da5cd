package utils

import "github.com/google/uuid"

// StateToken generates the opaque nonce for the OAuth state round-trip.
func StateToken() string {
	return uuid.NewString()
}
