// Package v1 holds the HTTP handlers for the admin web app: the server-side
// rendered pages and the /api endpoints their forms (and JSON clients) post to.
package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dramon11/boat-rental/config"
	logicv1 "github.com/dramon11/boat-rental/internal/logic/v1"
)

// Handler groups HTTP handlers for the admin app.
// Dependencies are injected via the constructor — no global state.
type Handler struct {
	auth    *logicv1.AuthService
	rentals *logicv1.RentalService
	billing *logicv1.BillingService
	authCfg config.AuthConfig
}

// NewHandler creates a new Handler with the given services.
func NewHandler(auth *logicv1.AuthService, rentals *logicv1.RentalService,
	billing *logicv1.BillingService, authCfg config.AuthConfig) *Handler {
	return &Handler{
		auth:    auth,
		rentals: rentals,
		billing: billing,
		authCfg: authCfg,
	}
}

// RegisterPublicRoutes registers the routes reachable without a session.
func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.GET("/login", h.LoginPage)
	r.POST("/api/login", h.Login)
}

// RegisterProtectedRoutes registers every route behind the session guard.
func (h *Handler) RegisterProtectedRoutes(rg gin.IRoutes) {
	rg.POST("/logout", h.Logout)
	rg.GET("/api/me", h.Me)

	rg.GET("/", h.DashboardPage)
	rg.GET("/clients", h.ClientsPage)
	rg.GET("/boats", h.BoatsPage)
	rg.GET("/reservations", h.ReservationsPage)
	rg.GET("/invoices", h.InvoicesPage)
	rg.GET("/cash", h.CashPage)
	rg.GET("/maintenance", h.MaintenancePage)
	rg.GET("/reports", h.ReportsPage)

	rg.POST("/api/clients", h.CreateClient)
	rg.POST("/api/clients/:id/delete", h.DeleteClient)
	rg.POST("/api/boats", h.CreateBoat)
	rg.POST("/api/boats/:id/availability", h.SetBoatAvailability)
	rg.POST("/api/reservations", h.CreateReservation)
	rg.POST("/api/reservations/:id/status", h.UpdateReservationStatus)
	rg.POST("/api/invoices", h.CreateInvoice)
	rg.POST("/api/cash", h.RecordPayment)
	rg.POST("/api/maintenance", h.CreateMaintenance)
	rg.POST("/api/maintenance/:id/complete", h.CompleteMaintenance)
}

// wantsJSON reports whether the client posted JSON. Form submissions get
// 303 redirects back to their page; JSON clients get status codes and bodies.
func wantsJSON(c *gin.Context) bool {
	return c.ContentType() == "application/json"
}

// idParam parses the :id route parameter.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// writeLogicError maps Logic-layer sentinel errors onto HTTP statuses.
func writeLogicError(c *gin.Context, err error) {
	logger := zerolog.Ctx(c.Request.Context())
	logger.Error().Err(err).Msg("Request failed")

	switch {
	case errors.Is(err, logicv1.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, logicv1.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation period"})
	case errors.Is(err, logicv1.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
	case errors.Is(err, logicv1.ErrInvalidMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// created answers a successful mutation: 303 back to the referring page for
// form posts, 201 with the new ID for JSON clients.
func created(c *gin.Context, id int, page string) {
	if wantsJSON(c) {
		c.JSON(http.StatusCreated, gin.H{"id": id})
		return
	}
	c.Redirect(http.StatusSeeOther, page)
}

// updated answers a successful in-place mutation.
func updated(c *gin.Context, page string) {
	if wantsJSON(c) {
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, page)
}
