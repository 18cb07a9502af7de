package domain

import "context"

// ClientRepository defines the data-access contract for rental clients.
type ClientRepository interface {
	// List returns all clients ordered by name.
	List(ctx context.Context) ([]Client, error)

	// Create inserts a new client and returns the generated ID.
	// Empty email/phone are stored as NULL.
	Create(ctx context.Context, name, email, phone string) (int, error)

	// Delete removes the client. Returns false when no row matched.
	Delete(ctx context.Context, id int) (bool, error)

	// Exists reports whether a client with the given ID exists.
	Exists(ctx context.Context, id int) (bool, error)
}

// BoatRepository defines the data-access contract for the fleet.
type BoatRepository interface {
	// List returns all boats ordered by name.
	List(ctx context.Context) ([]Boat, error)

	// Create inserts a new boat and returns the generated ID.
	Create(ctx context.Context, name, boatType string, capacity int, available bool) (int, error)

	// SetAvailability updates the available flag. Returns false when no row matched.
	SetAvailability(ctx context.Context, id int, available bool) (bool, error)

	// Exists reports whether a boat with the given ID exists.
	Exists(ctx context.Context, id int) (bool, error)

	// CountAvailable returns the number of boats currently marked available.
	CountAvailable(ctx context.Context) (int, error)
}

// ReservationRepository defines the data-access contract for reservations.
type ReservationRepository interface {
	// List returns all reservations, newest start date first.
	List(ctx context.Context) ([]Reservation, error)

	// Create inserts a new reservation in the given status and returns the
	// generated ID.
	Create(ctx context.Context, r *Reservation) (int, error)

	// UpdateStatus moves the reservation into the given status.
	// Returns false when no row matched.
	UpdateStatus(ctx context.Context, id int, status string) (bool, error)

	// Exists reports whether a reservation with the given ID exists.
	Exists(ctx context.Context, id int) (bool, error)

	// Count returns the total number of reservations.
	Count(ctx context.Context) (int, error)
}

// MaintenanceRepository defines the data-access contract for maintenance records.
type MaintenanceRepository interface {
	// List returns all maintenance records, newest first.
	List(ctx context.Context) ([]Maintenance, error)

	// Create inserts a new maintenance record and returns the generated ID.
	Create(ctx context.Context, boatID int, description string, completed bool) (int, error)

	// Complete marks the record completed. Returns false when no row matched.
	Complete(ctx context.Context, id int) (bool, error)
}
