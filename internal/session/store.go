// Package session holds server-side login state keyed by opaque tokens.
// Nothing about a session is trusted from the client except the token
// itself; every check reads the store.
package session

import (
	"context"
	"errors"

	"cohera-backend/internal/models"
)

// ErrSessionNotFound covers missing, expired and destroyed sessions alike.
var ErrSessionNotFound = errors.New("session not found")

type Store interface {
	// Create persists the session and returns its opaque token.
	Create(ctx context.Context, sess models.Session) (string, error)

	// Get resolves a token to the identity stored at login time.
	// Returns ErrSessionNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (*models.Session, error)

	// Destroy invalidates the token. Destroying an unknown token is not
	// an error; logout is idempotent.
	Destroy(ctx context.Context, token string) error
}
