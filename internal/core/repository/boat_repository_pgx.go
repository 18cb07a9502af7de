package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dramon11/boat-rental/internal/core/domain"
)

// PgxBoatRepository implements domain.BoatRepository using pgxpool.
type PgxBoatRepository struct {
	pool *pgxpool.Pool
}

// NewBoatRepository creates a new PgxBoatRepository.
func NewBoatRepository(pool *pgxpool.Pool) *PgxBoatRepository {
	return &PgxBoatRepository{pool: pool}
}

// List returns all boats ordered by name.
func (r *PgxBoatRepository) List(ctx context.Context) ([]domain.Boat, error) {
	query := `SELECT id, name, type, capacity, available, created_at FROM boats ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boats []domain.Boat
	for rows.Next() {
		var b domain.Boat
		if err := rows.Scan(&b.ID, &b.Name, &b.Type, &b.Capacity, &b.Available, &b.CreatedAt); err != nil {
			return nil, err
		}
		boats = append(boats, b)
	}

	return boats, rows.Err()
}

// Create inserts a new boat and returns the generated ID.
func (r *PgxBoatRepository) Create(ctx context.Context, name, boatType string, capacity int, available bool) (int, error) {
	query := `INSERT INTO boats (name, type, capacity, available) VALUES ($1, $2, $3, $4) RETURNING id`

	var id int
	err := r.pool.QueryRow(ctx, query, name, boatType, capacity, available).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// SetAvailability updates the available flag. Returns false when no row matched.
func (r *PgxBoatRepository) SetAvailability(ctx context.Context, id int, available bool) (bool, error) {
	query := `UPDATE boats SET available = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, available)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// Exists reports whether a boat with the given ID exists.
func (r *PgxBoatRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM boats WHERE id = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// CountAvailable returns the number of boats currently marked available.
func (r *PgxBoatRepository) CountAvailable(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM boats WHERE available`

	var count int
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
