package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dramon11/boat-rental/internal/core/domain"
)

// PgxClientRepository implements domain.ClientRepository using pgxpool.
type PgxClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository creates a new PgxClientRepository.
func NewClientRepository(pool *pgxpool.Pool) *PgxClientRepository {
	return &PgxClientRepository{pool: pool}
}

// List returns all clients ordered by name.
func (r *PgxClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), created_at
		FROM clients
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

// Create inserts a new client and returns the generated ID.
// Empty email/phone are stored as NULL.
func (r *PgxClientRepository) Create(ctx context.Context, name, email, phone string) (int, error) {
	query := `
		INSERT INTO clients (name, email, phone)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		RETURNING id
	`

	var id int
	err := r.pool.QueryRow(ctx, query, name, email, phone).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Delete removes the client. Returns false when no row matched.
func (r *PgxClientRepository) Delete(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM clients WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// Exists reports whether a client with the given ID exists.
func (r *PgxClientRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
