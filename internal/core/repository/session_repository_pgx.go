package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSessionRepository implements domain.SessionRepository using pgxpool.
// Rows are keyed by the token's jti claim.
type PgxSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new PgxSessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *PgxSessionRepository {
	return &PgxSessionRepository{pool: pool}
}

// Create records an issued token so it can be revoked before expiry.
func (r *PgxSessionRepository) Create(ctx context.Context, id string, userID int, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, id, userID, expiresAt)
	return err
}

// Exists reports whether the session is still live (present and unexpired).
func (r *PgxSessionRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM sessions WHERE id = $1 AND expires_at > CURRENT_TIMESTAMP)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Delete revokes the session. Deleting an unknown session is not an error.
func (r *PgxSessionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// DeleteExpired removes sessions past their expiry.
func (r *PgxSessionRepository) DeleteExpired(ctx context.Context) error {
	query := `DELETE FROM sessions WHERE expires_at <= CURRENT_TIMESTAMP`
	_, err := r.pool.Exec(ctx, query)
	return err
}
