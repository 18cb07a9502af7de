package v1

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dramon11/boat-rental/internal/core/domain"
	"github.com/dramon11/boat-rental/middleware"
)

// Date layouts accepted for reservation periods: the HTML forms submit
// "YYYY-MM-DD HH:MM" (with or without the T separator), API clients RFC 3339.
var periodLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
}

// RentalService covers clients, the fleet, reservations and maintenance.
type RentalService struct {
	clients      domain.ClientRepository
	boats        domain.BoatRepository
	reservations domain.ReservationRepository
	maintenance  domain.MaintenanceRepository
}

// NewRentalService creates a new RentalService with the given repositories.
func NewRentalService(clients domain.ClientRepository, boats domain.BoatRepository,
	reservations domain.ReservationRepository, maintenance domain.MaintenanceRepository) *RentalService {
	return &RentalService{
		clients:      clients,
		boats:        boats,
		reservations: reservations,
		maintenance:  maintenance,
	}
}

// ListClients returns all clients ordered by name.
func (s *RentalService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

// CreateClient adds a rental client.
func (s *RentalService) CreateClient(ctx context.Context, req domain.CreateClientRequest) (int, error) {
	id, err := s.clients.Create(ctx, req.Name, req.Email, req.Phone)
	if err != nil {
		return 0, fmt.Errorf("insert client: %w", err)
	}
	return id, nil
}

// DeleteClient removes a client.
func (s *RentalService) DeleteClient(ctx context.Context, id int) error {
	found, err := s.clients.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	if !found {
		return fmt.Errorf("delete client %d: %w", id, ErrNotFound)
	}
	return nil
}

// ListBoats returns the fleet ordered by name.
func (s *RentalService) ListBoats(ctx context.Context) ([]domain.Boat, error) {
	return s.boats.List(ctx)
}

// CreateBoat adds a boat or jetski to the fleet.
func (s *RentalService) CreateBoat(ctx context.Context, req domain.CreateBoatRequest) (int, error) {
	id, err := s.boats.Create(ctx, req.Name, req.Type, req.Capacity, req.Available)
	if err != nil {
		return 0, fmt.Errorf("insert boat: %w", err)
	}
	return id, nil
}

// SetBoatAvailability flips a boat's availability flag.
func (s *RentalService) SetBoatAvailability(ctx context.Context, id int, available bool) error {
	found, err := s.boats.SetAvailability(ctx, id, available)
	if err != nil {
		return fmt.Errorf("update boat %d: %w", id, err)
	}
	if !found {
		return fmt.Errorf("update boat %d: %w", id, ErrNotFound)
	}
	return nil
}

// ListReservations returns all reservations, newest start date first.
func (s *RentalService) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservations.List(ctx)
}

// CreateReservation books a boat for a client. The referenced client and
// boat must exist and the period must parse with the end after the start.
// New reservations always start in the pending state.
func (s *RentalService) CreateReservation(ctx context.Context, req domain.CreateReservationRequest) (int, error) {
	ctx, span := middleware.StartSpan(ctx, "rentals.create_reservation", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int("client.id", req.ClientID),
		attribute.Int("boat.id", req.BoatID),
	))
	defer span.End()

	start, err := parsePeriodDate(req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("start date %q: %w", req.StartDate, ErrInvalidPeriod)
	}
	end, err := parsePeriodDate(req.EndDate)
	if err != nil {
		return 0, fmt.Errorf("end date %q: %w", req.EndDate, ErrInvalidPeriod)
	}
	if !end.After(start) {
		return 0, fmt.Errorf("end %v not after start %v: %w", end, start, ErrInvalidPeriod)
	}

	if err := s.requireClient(ctx, req.ClientID); err != nil {
		return 0, err
	}
	if err := s.requireBoat(ctx, req.BoatID); err != nil {
		return 0, err
	}

	id, err := s.reservations.Create(ctx, &domain.Reservation{
		ClientID:  req.ClientID,
		BoatID:    req.BoatID,
		StartDate: start,
		EndDate:   end,
		Status:    domain.ReservationPending,
	})
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("insert reservation: %w", err)
	}

	span.SetAttributes(attribute.Int("reservation.id", id))
	return id, nil
}

// UpdateReservationStatus moves a reservation into the given lifecycle state.
func (s *RentalService) UpdateReservationStatus(ctx context.Context, id int, status string) error {
	if !domain.ValidReservationStatus(status) {
		return fmt.Errorf("status %q: %w", status, ErrInvalidStatus)
	}

	found, err := s.reservations.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update reservation %d: %w", id, err)
	}
	if !found {
		return fmt.Errorf("update reservation %d: %w", id, ErrNotFound)
	}
	return nil
}

// ListMaintenance returns all maintenance records, newest first.
func (s *RentalService) ListMaintenance(ctx context.Context) ([]domain.Maintenance, error) {
	return s.maintenance.List(ctx)
}

// CreateMaintenance records service work on an existing boat.
func (s *RentalService) CreateMaintenance(ctx context.Context, req domain.CreateMaintenanceRequest) (int, error) {
	if err := s.requireBoat(ctx, req.BoatID); err != nil {
		return 0, err
	}

	id, err := s.maintenance.Create(ctx, req.BoatID, req.Description, req.Completed)
	if err != nil {
		return 0, fmt.Errorf("insert maintenance: %w", err)
	}
	return id, nil
}

// CompleteMaintenance marks a maintenance record as done.
func (s *RentalService) CompleteMaintenance(ctx context.Context, id int) error {
	found, err := s.maintenance.Complete(ctx, id)
	if err != nil {
		return fmt.Errorf("complete maintenance %d: %w", id, err)
	}
	if !found {
		return fmt.Errorf("complete maintenance %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *RentalService) requireClient(ctx context.Context, id int) error {
	ok, err := s.clients.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check client %d: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("client %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *RentalService) requireBoat(ctx context.Context, id int) error {
	ok, err := s.boats.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check boat %d: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("boat %d: %w", id, ErrNotFound)
	}
	return nil
}

func parsePeriodDate(value string) (time.Time, error) {
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
