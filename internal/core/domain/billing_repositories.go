package domain

import "context"

// InvoiceRepository defines the data-access contract for invoices.
type InvoiceRepository interface {
	// List returns all invoices, newest first.
	List(ctx context.Context) ([]Invoice, error)

	// Create inserts a new unpaid invoice and returns the generated ID.
	Create(ctx context.Context, reservationID int, amount float64) (int, error)

	// Exists reports whether an invoice with the given ID exists.
	Exists(ctx context.Context, id int) (bool, error)

	// MarkPaidIfCovered sets paid=true when recorded cash transactions cover
	// the invoice amount. Returns true when the invoice ended up paid.
	// Implemented as a single statement so no transaction is needed.
	MarkPaidIfCovered(ctx context.Context, id int) (bool, error)

	// SumPaid returns the total amount across paid invoices.
	SumPaid(ctx context.Context) (float64, error)
}

// CashRepository defines the data-access contract for cash transactions.
type CashRepository interface {
	// List returns all cash transactions, newest first.
	List(ctx context.Context) ([]CashTransaction, error)

	// Create inserts a new cash transaction and returns the generated ID.
	Create(ctx context.Context, invoiceID int, amount float64, method string) (int, error)
}

// ReportRepository provides the aggregate report queries.
type ReportRepository interface {
	// IncomeByMonth returns paid-invoice totals grouped by calendar month,
	// newest month first.
	IncomeByMonth(ctx context.Context) ([]MonthlyIncome, error)

	// BoatOccupancy returns per-boat reservation counts, busiest first.
	// Boats with no reservations appear with a zero count.
	BoatOccupancy(ctx context.Context) ([]BoatOccupancy, error)
}
