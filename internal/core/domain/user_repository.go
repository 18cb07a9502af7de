package domain

import "context"

// UserRepository defines the data-access contract for credential records.
// Implementations live in internal/core/repository (Core layer).
type UserRepository interface {
	// GetByUsername returns the user matching the given username.
	// Returns (nil, nil) when no user is found.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByID returns the user with the given ID.
	// Returns (nil, nil) when no user is found.
	GetByID(ctx context.Context, id int) (*User, error)

	// Create inserts a new user and returns the generated user ID.
	Create(ctx context.Context, username, passwordHash string) (int, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int, error)

	// UpdateLastLogin sets the last_login timestamp to now for the given user.
	UpdateLastLogin(ctx context.Context, userID int) error
}
