package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dramon11/boat-rental/internal/core/domain"
)

// PgxMaintenanceRepository implements domain.MaintenanceRepository using pgxpool.
type PgxMaintenanceRepository struct {
	pool *pgxpool.Pool
}

// NewMaintenanceRepository creates a new PgxMaintenanceRepository.
func NewMaintenanceRepository(pool *pgxpool.Pool) *PgxMaintenanceRepository {
	return &PgxMaintenanceRepository{pool: pool}
}

// List returns all maintenance records, newest first.
func (r *PgxMaintenanceRepository) List(ctx context.Context) ([]domain.Maintenance, error) {
	query := `SELECT id, boat_id, description, date, completed FROM maintenances ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Maintenance
	for rows.Next() {
		var m domain.Maintenance
		if err := rows.Scan(&m.ID, &m.BoatID, &m.Description, &m.Date, &m.Completed); err != nil {
			return nil, err
		}
		records = append(records, m)
	}

	return records, rows.Err()
}

// Create inserts a new maintenance record and returns the generated ID.
func (r *PgxMaintenanceRepository) Create(ctx context.Context, boatID int, description string, completed bool) (int, error) {
	query := `INSERT INTO maintenances (boat_id, description, completed) VALUES ($1, $2, $3) RETURNING id`

	var id int
	err := r.pool.QueryRow(ctx, query, boatID, description, completed).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Complete marks the record completed. Returns false when no row matched.
func (r *PgxMaintenanceRepository) Complete(ctx context.Context, id int) (bool, error) {
	query := `UPDATE maintenances SET completed = TRUE WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
