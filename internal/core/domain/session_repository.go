package domain

import (
	"context"
	"time"
)

// SessionRepository is the server-side revocation set for issued tokens,
// keyed by the token's jti claim. It is only consulted when strict logout is
// enabled; token validation itself stays stateless.
type SessionRepository interface {
	// Create records an issued token so it can be revoked before expiry.
	Create(ctx context.Context, id string, userID int, expiresAt time.Time) error

	// Exists reports whether the session is still live (present and unexpired).
	Exists(ctx context.Context, id string) (bool, error)

	// Delete revokes the session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes sessions past their expiry.
	DeleteExpired(ctx context.Context) error
}
