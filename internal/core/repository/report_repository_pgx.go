package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dramon11/boat-rental/internal/core/domain"
)

// PgxReportRepository implements domain.ReportRepository using pgxpool.
type PgxReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new PgxReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *PgxReportRepository {
	return &PgxReportRepository{pool: pool}
}

// IncomeByMonth returns paid-invoice totals grouped by calendar month,
// newest month first.
func (r *PgxReportRepository) IncomeByMonth(ctx context.Context) ([]domain.MonthlyIncome, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM') AS month, SUM(amount) AS total
		FROM invoices
		WHERE paid
		GROUP BY month
		ORDER BY month DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var income []domain.MonthlyIncome
	for rows.Next() {
		var row domain.MonthlyIncome
		if err := rows.Scan(&row.Month, &row.Total); err != nil {
			return nil, err
		}
		income = append(income, row)
	}

	return income, rows.Err()
}

// BoatOccupancy returns per-boat reservation counts, busiest first.
func (r *PgxReportRepository) BoatOccupancy(ctx context.Context) ([]domain.BoatOccupancy, error) {
	query := `
		SELECT b.name, COUNT(res.id) AS reservations
		FROM boats b
		LEFT JOIN reservations res ON res.boat_id = b.id
		GROUP BY b.id, b.name
		ORDER BY reservations DESC, b.name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var occupancy []domain.BoatOccupancy
	for rows.Next() {
		var row domain.BoatOccupancy
		if err := rows.Scan(&row.BoatName, &row.Reservations); err != nil {
			return nil, err
		}
		occupancy = append(occupancy, row)
	}

	return occupancy, rows.Err()
}
