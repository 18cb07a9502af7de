// Package domain defines the data model of the rental business and the
// data-access contracts implemented in internal/core/repository.
// The Logic layer depends on these interfaces only — never on SQL or pgx.
package domain

import "time"

// Reservation lifecycle states.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

// Payment methods accepted at the cash desk.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
	PaymentOther    = "other"
)

// User is a staff credential record. PasswordHash is a bcrypt hash; it is
// included so the Logic layer can verify credentials.
type User struct {
	ID           int
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Client is a rental customer.
type Client struct {
	ID        int
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// Boat is a rentable vessel (boat or jetski).
type Boat struct {
	ID        int
	Name      string
	Type      string
	Capacity  int
	Available bool
	CreatedAt time.Time
}

// Reservation books a boat for a client over a time range.
type Reservation struct {
	ID        int
	ClientID  int
	BoatID    int
	StartDate time.Time
	EndDate   time.Time
	Status    string
	CreatedAt time.Time
}

// Invoice bills a reservation. Paid flips once cash transactions cover Amount.
type Invoice struct {
	ID            int
	ReservationID int
	Amount        float64
	Paid          bool
	Date          time.Time
}

// CashTransaction records a payment against an invoice.
type CashTransaction struct {
	ID        int
	InvoiceID int
	Amount    float64
	Method    string
	Date      time.Time
}

// Maintenance records service work on a boat.
type Maintenance struct {
	ID          int
	BoatID      int
	Description string
	Date        time.Time
	Completed   bool
}

// MonthlyIncome is one row of the income-by-month report.
type MonthlyIncome struct {
	Month string
	Total float64
}

// BoatOccupancy is one row of the occupancy report: how many reservations
// each boat has accumulated.
type BoatOccupancy struct {
	BoatName     string
	Reservations int
}

// DashboardStats backs the dashboard page counters.
type DashboardStats struct {
	TotalReservations int
	PaidIncome        float64
	AvailableBoats    int
}

// ValidReservationStatus reports whether s is a known reservation state.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentOther:
		return true
	}
	return false
}
