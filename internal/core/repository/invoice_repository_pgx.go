package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dramon11/boat-rental/internal/core/domain"
)

// PgxInvoiceRepository implements domain.InvoiceRepository using pgxpool.
type PgxInvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new PgxInvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{pool: pool}
}

// List returns all invoices, newest first.
func (r *PgxInvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	query := `SELECT id, reservation_id, amount, paid, date FROM invoices ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		if err := rows.Scan(&inv.ID, &inv.ReservationID, &inv.Amount, &inv.Paid, &inv.Date); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

// Create inserts a new unpaid invoice and returns the generated ID.
func (r *PgxInvoiceRepository) Create(ctx context.Context, reservationID int, amount float64) (int, error) {
	query := `INSERT INTO invoices (reservation_id, amount) VALUES ($1, $2) RETURNING id`

	var id int
	err := r.pool.QueryRow(ctx, query, reservationID, amount).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Exists reports whether an invoice with the given ID exists.
func (r *PgxInvoiceRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM invoices WHERE id = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// MarkPaidIfCovered sets paid=true when recorded cash transactions cover the
// invoice amount. A single statement, so no transaction is needed around the
// preceding cash insert.
func (r *PgxInvoiceRepository) MarkPaidIfCovered(ctx context.Context, id int) (bool, error) {
	query := `
		UPDATE invoices
		SET paid = TRUE
		WHERE id = $1
		  AND (SELECT COALESCE(SUM(amount), 0) FROM cash_transactions WHERE invoice_id = $1) >= amount
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// SumPaid returns the total amount across paid invoices.
func (r *PgxInvoiceRepository) SumPaid(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE paid`

	var total float64
	err := r.pool.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}
