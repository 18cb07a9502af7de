package domain

// Request/response DTOs bound in the web layer. Tags cover both the JSON API
// and the HTML form posts, which share endpoints.

// LoginRequest carries a credential submission.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// AuthResponse is returned on successful login in bearer-token deployments.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"-"`
}

// CreateClientRequest adds a rental client.
type CreateClientRequest struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Email string `json:"email" form:"email" binding:"omitempty,email"`
	Phone string `json:"phone" form:"phone"`
}

// CreateBoatRequest adds a boat or jetski to the fleet.
type CreateBoatRequest struct {
	Name      string `json:"name" form:"name" binding:"required"`
	Type      string `json:"type" form:"type" binding:"required"`
	Capacity  int    `json:"capacity" form:"capacity" binding:"required,gt=0"`
	Available bool   `json:"available" form:"available"`
}

// CreateReservationRequest books a boat for a client. Dates are submitted as
// strings ("YYYY-MM-DD HH:MM" from the forms, RFC 3339 from API clients) and
// parsed in the Logic layer.
type CreateReservationRequest struct {
	ClientID  int    `json:"client_id" form:"client_id" binding:"required,gt=0"`
	BoatID    int    `json:"boat_id" form:"boat_id" binding:"required,gt=0"`
	StartDate string `json:"start_date" form:"start_date" binding:"required"`
	EndDate   string `json:"end_date" form:"end_date" binding:"required"`
}

// CreateInvoiceRequest bills a reservation.
type CreateInvoiceRequest struct {
	ReservationID int     `json:"reservation_id" form:"reservation_id" binding:"required,gt=0"`
	Amount        float64 `json:"amount" form:"amount" binding:"required,gt=0"`
}

// RecordPaymentRequest registers a payment against an invoice.
type RecordPaymentRequest struct {
	InvoiceID int     `json:"invoice_id" form:"invoice_id" binding:"required,gt=0"`
	Amount    float64 `json:"amount" form:"amount" binding:"required,gt=0"`
	Method    string  `json:"method" form:"method" binding:"required,oneof=cash card transfer other"`
}

// CreateMaintenanceRequest records service work on a boat.
type CreateMaintenanceRequest struct {
	BoatID      int    `json:"boat_id" form:"boat_id" binding:"required,gt=0"`
	Description string `json:"description" form:"description" binding:"required"`
	Completed   bool   `json:"completed" form:"completed"`
}

// UpdateReservationStatusRequest moves a reservation between lifecycle states.
type UpdateReservationStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

// SetBoatAvailabilityRequest flips a boat's availability.
type SetBoatAvailabilityRequest struct {
	Available bool `json:"available" form:"available"`
}
