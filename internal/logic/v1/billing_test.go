package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramon11/boat-rental/internal/core/domain"
)

func newBillingFixture() (*BillingService, *fakeInvoiceRepo, *fakeCashRepo, *fakeReservationRepo, *fakeBoatRepo, *fakeReportRepo) {
	invoices := newFakeInvoiceRepo()
	cash := newFakeCashRepo(invoices)
	reservations := newFakeReservationRepo()
	boats := newFakeBoatRepo()
	reports := &fakeReportRepo{}
	return NewBillingService(invoices, cash, reports, reservations, boats), invoices, cash, reservations, boats, reports
}

func seedReservation(t *testing.T, reservations *fakeReservationRepo) int {
	t.Helper()
	id, err := reservations.Create(context.Background(), &domain.Reservation{
		ClientID: 1, BoatID: 1, Status: domain.ReservationConfirmed,
	})
	require.NoError(t, err)
	return id
}

func TestCreateInvoice(t *testing.T) {
	svc, invoices, _, reservations, _, _ := newBillingFixture()
	ctx := context.Background()

	resID := seedReservation(t, reservations)

	id, err := svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{ReservationID: resID, Amount: 150})
	require.NoError(t, err)
	assert.False(t, invoices.invoices[id].Paid)

	_, err = svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{ReservationID: 999, Amount: 150})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordPayment_FullCoverageMarksPaid(t *testing.T) {
	svc, invoices, _, reservations, _, _ := newBillingFixture()
	ctx := context.Background()

	resID := seedReservation(t, reservations)
	invID, err := svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{ReservationID: resID, Amount: 100})
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InvoiceID: invID, Amount: 100, Method: domain.PaymentCash,
	})
	require.NoError(t, err)
	assert.True(t, invoices.invoices[invID].Paid)
}

func TestRecordPayment_PartialPaymentsAccumulate(t *testing.T) {
	svc, invoices, cash, reservations, _, _ := newBillingFixture()
	ctx := context.Background()

	resID := seedReservation(t, reservations)
	invID, err := svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{ReservationID: resID, Amount: 100})
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InvoiceID: invID, Amount: 40, Method: domain.PaymentCash,
	})
	require.NoError(t, err)
	assert.False(t, invoices.invoices[invID].Paid)

	_, err = svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InvoiceID: invID, Amount: 60, Method: domain.PaymentCard,
	})
	require.NoError(t, err)
	assert.True(t, invoices.invoices[invID].Paid)
	assert.Len(t, cash.transactions, 2)
}

func TestRecordPayment_InvalidMethod(t *testing.T) {
	svc, _, _, reservations, _, _ := newBillingFixture()
	ctx := context.Background()

	resID := seedReservation(t, reservations)
	invID, err := svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{ReservationID: resID, Amount: 100})
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InvoiceID: invID, Amount: 100, Method: "iou",
	})
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestRecordPayment_UnknownInvoice(t *testing.T) {
	svc, _, _, _, _, _ := newBillingFixture()

	_, err := svc.RecordPayment(context.Background(), domain.RecordPaymentRequest{
		InvoiceID: 999, Amount: 100, Method: domain.PaymentCash,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDashboardStats(t *testing.T) {
	svc, invoices, _, reservations, boats, _ := newBillingFixture()
	ctx := context.Background()

	seedReservation(t, reservations)
	seedReservation(t, reservations)
	_, err := boats.Create(ctx, "Sea Ray", "boat", 6, true)
	require.NoError(t, err)
	_, err = boats.Create(ctx, "Wave", "jetski", 2, false)
	require.NoError(t, err)

	invID, err := invoices.Create(ctx, 1, 250)
	require.NoError(t, err)
	inv := invoices.invoices[invID]
	inv.Paid = true
	invoices.invoices[invID] = inv

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalReservations)
	assert.Equal(t, 250.0, stats.PaidIncome)
	assert.Equal(t, 1, stats.AvailableBoats)
}

func TestReports(t *testing.T) {
	svc, _, _, _, _, reports := newBillingFixture()
	ctx := context.Background()

	reports.income = []domain.MonthlyIncome{{Month: "2026-07", Total: 1200}}
	reports.occupancy = []domain.BoatOccupancy{{BoatName: "Sea Ray", Reservations: 3}}

	income, err := svc.IncomeByMonth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-07", income[0].Month)

	occupancy, err := svc.BoatOccupancy(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, occupancy[0].Reservations)
}
