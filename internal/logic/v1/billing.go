package v1

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dramon11/boat-rental/internal/core/domain"
	"github.com/dramon11/boat-rental/middleware"
)

// BillingService covers invoices, cash transactions, the aggregate reports
// and the dashboard counters.
type BillingService struct {
	invoices     domain.InvoiceRepository
	cash         domain.CashRepository
	reports      domain.ReportRepository
	reservations domain.ReservationRepository
	boats        domain.BoatRepository
}

// NewBillingService creates a new BillingService with the given repositories.
func NewBillingService(invoices domain.InvoiceRepository, cash domain.CashRepository,
	reports domain.ReportRepository, reservations domain.ReservationRepository,
	boats domain.BoatRepository) *BillingService {
	return &BillingService{
		invoices:     invoices,
		cash:         cash,
		reports:      reports,
		reservations: reservations,
		boats:        boats,
	}
}

// ListInvoices returns all invoices, newest first.
func (s *BillingService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoices.List(ctx)
}

// CreateInvoice bills an existing reservation.
func (s *BillingService) CreateInvoice(ctx context.Context, req domain.CreateInvoiceRequest) (int, error) {
	found, err := s.reservations.Exists(ctx, req.ReservationID)
	if err != nil {
		return 0, fmt.Errorf("check reservation %d: %w", req.ReservationID, err)
	}
	if !found {
		return 0, fmt.Errorf("reservation %d: %w", req.ReservationID, ErrNotFound)
	}

	id, err := s.invoices.Create(ctx, req.ReservationID, req.Amount)
	if err != nil {
		return 0, fmt.Errorf("insert invoice: %w", err)
	}
	return id, nil
}

// ListCashTransactions returns all cash transactions, newest first.
func (s *BillingService) ListCashTransactions(ctx context.Context) ([]domain.CashTransaction, error) {
	return s.cash.List(ctx)
}

// RecordPayment registers a payment against an invoice and marks the invoice
// paid once recorded payments cover its amount.
func (s *BillingService) RecordPayment(ctx context.Context, req domain.RecordPaymentRequest) (int, error) {
	ctx, span := middleware.StartSpan(ctx, "billing.record_payment", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int("invoice.id", req.InvoiceID),
		attribute.Float64("amount", req.Amount),
	))
	defer span.End()

	if !domain.ValidPaymentMethod(req.Method) {
		return 0, fmt.Errorf("method %q: %w", req.Method, ErrInvalidMethod)
	}

	ok, err := s.invoices.Exists(ctx, req.InvoiceID)
	if err != nil {
		return 0, fmt.Errorf("check invoice %d: %w", req.InvoiceID, err)
	}
	if !ok {
		return 0, fmt.Errorf("invoice %d: %w", req.InvoiceID, ErrNotFound)
	}

	id, err := s.cash.Create(ctx, req.InvoiceID, req.Amount, req.Method)
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("insert cash transaction: %w", err)
	}

	paid, err := s.invoices.MarkPaidIfCovered(ctx, req.InvoiceID)
	if err != nil {
		// The payment is recorded; the paid flag catches up on the next one.
		span.RecordError(fmt.Errorf("mark invoice paid: %w", err))
	}
	span.SetAttributes(attribute.Bool("invoice.paid", paid))

	return id, nil
}

// IncomeByMonth returns paid-invoice totals grouped by calendar month.
func (s *BillingService) IncomeByMonth(ctx context.Context) ([]domain.MonthlyIncome, error) {
	return s.reports.IncomeByMonth(ctx)
}

// BoatOccupancy returns per-boat reservation counts, busiest first.
func (s *BillingService) BoatOccupancy(ctx context.Context) ([]domain.BoatOccupancy, error) {
	return s.reports.BoatOccupancy(ctx)
}

// DashboardStats gathers the dashboard counters: total reservations, income
// from paid invoices and the number of available boats.
func (s *BillingService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	total, err := s.reservations.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	income, err := s.invoices.SumPaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum paid invoices: %w", err)
	}

	available, err := s.boats.CountAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("count available boats: %w", err)
	}

	return &domain.DashboardStats{
		TotalReservations: total,
		PaidIncome:        income,
		AvailableBoats:    available,
	}, nil
}
