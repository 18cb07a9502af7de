package v1

import (
	"context"
	"time"

	"github.com/dramon11/boat-rental/internal/core/domain"
)

// In-memory repository fakes. Each one stores just enough state for the
// service tests; error fields force the failure paths.

type fakeUserRepo struct {
	users   map[string]*domain.User
	nextID  int
	lastErr error

	createdUsername string
	lastLoginUserID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.lastErr != nil {
		return nil, f.lastErr
	}
	return f.users[username], nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	if f.lastErr != nil {
		return nil, f.lastErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, username, passwordHash string) (int, error) {
	if f.lastErr != nil {
		return 0, f.lastErr
	}
	id := f.nextID
	f.nextID++
	f.users[username] = &domain.User{ID: id, Username: username, PasswordHash: passwordHash}
	f.createdUsername = username
	return id, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int, error) {
	if f.lastErr != nil {
		return 0, f.lastErr
	}
	return len(f.users), nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID int) error {
	f.lastLoginUserID = userID
	return nil
}

type fakeSessionRepo struct {
	sessions  map[string]time.Time
	createErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]time.Time{}}
}

func (f *fakeSessionRepo) Create(ctx context.Context, id string, userID int, expiresAt time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions[id] = expiresAt
	return nil
}

func (f *fakeSessionRepo) Exists(ctx context.Context, id string) (bool, error) {
	expiresAt, ok := f.sessions[id]
	return ok && expiresAt.After(time.Now()), nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(ctx context.Context) error {
	for id, expiresAt := range f.sessions {
		if !expiresAt.After(time.Now()) {
			delete(f.sessions, id)
		}
	}
	return nil
}

type fakeClientRepo struct {
	clients map[int]domain.Client
	nextID  int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int]domain.Client{}, nextID: 1}
}

func (f *fakeClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClientRepo) Create(ctx context.Context, name, email, phone string) (int, error) {
	id := f.nextID
	f.nextID++
	f.clients[id] = domain.Client{ID: id, Name: name, Email: email, Phone: phone}
	return id, nil
}

func (f *fakeClientRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := f.clients[id]; !ok {
		return false, nil
	}
	delete(f.clients, id)
	return true, nil
}

func (f *fakeClientRepo) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := f.clients[id]
	return ok, nil
}

type fakeBoatRepo struct {
	boats  map[int]domain.Boat
	nextID int
}

func newFakeBoatRepo() *fakeBoatRepo {
	return &fakeBoatRepo{boats: map[int]domain.Boat{}, nextID: 1}
}

func (f *fakeBoatRepo) List(ctx context.Context) ([]domain.Boat, error) {
	out := make([]domain.Boat, 0, len(f.boats))
	for _, b := range f.boats {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBoatRepo) Create(ctx context.Context, name, boatType string, capacity int, available bool) (int, error) {
	id := f.nextID
	f.nextID++
	f.boats[id] = domain.Boat{ID: id, Name: name, Type: boatType, Capacity: capacity, Available: available}
	return id, nil
}

func (f *fakeBoatRepo) SetAvailability(ctx context.Context, id int, available bool) (bool, error) {
	b, ok := f.boats[id]
	if !ok {
		return false, nil
	}
	b.Available = available
	f.boats[id] = b
	return true, nil
}

func (f *fakeBoatRepo) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := f.boats[id]
	return ok, nil
}

func (f *fakeBoatRepo) CountAvailable(ctx context.Context) (int, error) {
	n := 0
	for _, b := range f.boats {
		if b.Available {
			n++
		}
	}
	return n, nil
}

type fakeReservationRepo struct {
	reservations map[int]domain.Reservation
	nextID       int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: map[int]domain.Reservation{}, nextID: 1}
}

func (f *fakeReservationRepo) List(ctx context.Context) ([]domain.Reservation, error) {
	out := make([]domain.Reservation, 0, len(f.reservations))
	for _, r := range f.reservations {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReservationRepo) Create(ctx context.Context, r *domain.Reservation) (int, error) {
	id := f.nextID
	f.nextID++
	stored := *r
	stored.ID = id
	f.reservations[id] = stored
	return id, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id int, status string) (bool, error) {
	r, ok := f.reservations[id]
	if !ok {
		return false, nil
	}
	r.Status = status
	f.reservations[id] = r
	return true, nil
}

func (f *fakeReservationRepo) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := f.reservations[id]
	return ok, nil
}

func (f *fakeReservationRepo) Count(ctx context.Context) (int, error) {
	return len(f.reservations), nil
}

type fakeMaintenanceRepo struct {
	records map[int]domain.Maintenance
	nextID  int
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{records: map[int]domain.Maintenance{}, nextID: 1}
}

func (f *fakeMaintenanceRepo) List(ctx context.Context) ([]domain.Maintenance, error) {
	out := make([]domain.Maintenance, 0, len(f.records))
	for _, m := range f.records {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMaintenanceRepo) Create(ctx context.Context, boatID int, description string, completed bool) (int, error) {
	id := f.nextID
	f.nextID++
	f.records[id] = domain.Maintenance{ID: id, BoatID: boatID, Description: description, Completed: completed}
	return id, nil
}

func (f *fakeMaintenanceRepo) Complete(ctx context.Context, id int) (bool, error) {
	m, ok := f.records[id]
	if !ok {
		return false, nil
	}
	m.Completed = true
	f.records[id] = m
	return true, nil
}

type fakeInvoiceRepo struct {
	invoices map[int]domain.Invoice
	payments map[int]float64
	nextID   int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[int]domain.Invoice{}, payments: map[int]float64{}, nextID: 1}
}

func (f *fakeInvoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	out := make([]domain.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, reservationID int, amount float64) (int, error) {
	id := f.nextID
	f.nextID++
	f.invoices[id] = domain.Invoice{ID: id, ReservationID: reservationID, Amount: amount}
	return id, nil
}

func (f *fakeInvoiceRepo) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := f.invoices[id]
	return ok, nil
}

func (f *fakeInvoiceRepo) MarkPaidIfCovered(ctx context.Context, id int) (bool, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return false, nil
	}
	if f.payments[id] >= inv.Amount {
		inv.Paid = true
		f.invoices[id] = inv
	}
	return inv.Paid, nil
}

func (f *fakeInvoiceRepo) SumPaid(ctx context.Context) (float64, error) {
	var total float64
	for _, inv := range f.invoices {
		if inv.Paid {
			total += inv.Amount
		}
	}
	return total, nil
}

type fakeCashRepo struct {
	transactions []domain.CashTransaction
	invoices     *fakeInvoiceRepo
	nextID       int
}

func newFakeCashRepo(invoices *fakeInvoiceRepo) *fakeCashRepo {
	return &fakeCashRepo{invoices: invoices, nextID: 1}
}

func (f *fakeCashRepo) List(ctx context.Context) ([]domain.CashTransaction, error) {
	return f.transactions, nil
}

func (f *fakeCashRepo) Create(ctx context.Context, invoiceID int, amount float64, method string) (int, error) {
	id := f.nextID
	f.nextID++
	f.transactions = append(f.transactions, domain.CashTransaction{
		ID: id, InvoiceID: invoiceID, Amount: amount, Method: method,
	})
	if f.invoices != nil {
		f.invoices.payments[invoiceID] += amount
	}
	return id, nil
}

type fakeReportRepo struct {
	income    []domain.MonthlyIncome
	occupancy []domain.BoatOccupancy
}

func (f *fakeReportRepo) IncomeByMonth(ctx context.Context) ([]domain.MonthlyIncome, error) {
	return f.income, nil
}

func (f *fakeReportRepo) BoatOccupancy(ctx context.Context) ([]domain.BoatOccupancy, error) {
	return f.occupancy, nil
}
