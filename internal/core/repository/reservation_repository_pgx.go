package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dramon11/boat-rental/internal/core/domain"
)

// PgxReservationRepository implements domain.ReservationRepository using pgxpool.
type PgxReservationRepository struct {
	pool *pgxpool.Pool
}

// NewReservationRepository creates a new PgxReservationRepository.
func NewReservationRepository(pool *pgxpool.Pool) *PgxReservationRepository {
	return &PgxReservationRepository{pool: pool}
}

// List returns all reservations, newest start date first.
func (r *PgxReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	query := `
		SELECT id, client_id, boat_id, start_date, end_date, status, created_at
		FROM reservations
		ORDER BY start_date DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		err := rows.Scan(&res.ID, &res.ClientID, &res.BoatID,
			&res.StartDate, &res.EndDate, &res.Status, &res.CreatedAt)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

// Create inserts a new reservation and returns the generated ID.
func (r *PgxReservationRepository) Create(ctx context.Context, res *domain.Reservation) (int, error) {
	query := `
		INSERT INTO reservations (client_id, boat_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int
	err := r.pool.QueryRow(ctx, query,
		res.ClientID, res.BoatID, res.StartDate, res.EndDate, res.Status).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateStatus moves the reservation into the given status.
// Returns false when no row matched.
func (r *PgxReservationRepository) UpdateStatus(ctx context.Context, id int, status string) (bool, error) {
	query := `UPDATE reservations SET status = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// Exists reports whether a reservation with the given ID exists.
func (r *PgxReservationRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reservations WHERE id = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Count returns the total number of reservations.
func (r *PgxReservationRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM reservations`

	var count int
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
