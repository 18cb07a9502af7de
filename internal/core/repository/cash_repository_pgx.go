package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dramon11/boat-rental/internal/core/domain"
)

// PgxCashRepository implements domain.CashRepository using pgxpool.
type PgxCashRepository struct {
	pool *pgxpool.Pool
}

// NewCashRepository creates a new PgxCashRepository.
func NewCashRepository(pool *pgxpool.Pool) *PgxCashRepository {
	return &PgxCashRepository{pool: pool}
}

// List returns all cash transactions, newest first.
func (r *PgxCashRepository) List(ctx context.Context) ([]domain.CashTransaction, error) {
	query := `SELECT id, invoice_id, amount, method, date FROM cash_transactions ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.CashTransaction
	for rows.Next() {
		var t domain.CashTransaction
		if err := rows.Scan(&t.ID, &t.InvoiceID, &t.Amount, &t.Method, &t.Date); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

// Create inserts a new cash transaction and returns the generated ID.
func (r *PgxCashRepository) Create(ctx context.Context, invoiceID int, amount float64, method string) (int, error) {
	query := `INSERT INTO cash_transactions (invoice_id, amount, method) VALUES ($1, $2, $3) RETURNING id`

	var id int
	err := r.pool.QueryRow(ctx, query, invoiceID, amount, method).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}
