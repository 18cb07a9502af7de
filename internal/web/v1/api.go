package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dramon11/boat-rental/internal/core/domain"
	"github.com/dramon11/boat-rental/middleware"
)

// CreateClient handles POST /api/clients.
func (h *Handler) CreateClient(c *gin.Context) {
	var req domain.CreateClientRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.rentals.CreateClient(c.Request.Context(), req)
	if err != nil {
		writeLogicError(c, err)
		return
	}

	created(c, id, "/clients")
}

// DeleteClient handles POST /api/clients/:id/delete.
func (h *Handler) DeleteClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.rentals.DeleteClient(c.Request.Context(), id); err != nil {
		writeLogicError(c, err)
		return
	}

	updated(c, "/clients")
}

// CreateBoat handles POST /api/boats.
func (h *Handler) CreateBoat(c *gin.Context) {
	var req domain.CreateBoatRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.rentals.CreateBoat(c.Request.Context(), req)
	if err != nil {
		writeLogicError(c, err)
		return
	}

	created(c, id, "/boats")
}

// SetBoatAvailability handles POST /api/boats/:id/availability.
func (h *Handler) SetBoatAvailability(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req domain.SetBoatAvailabilityRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.rentals.SetBoatAvailability(c.Request.Context(), id, req.Available); err != nil {
		writeLogicError(c, err)
		return
	}

	updated(c, "/boats")
}

// CreateReservation handles POST /api/reservations.
func (h *Handler) CreateReservation(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var req domain.CreateReservationRequest
	if err := c.ShouldBind(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		span.RecordError(err)
		logger.Error().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(attribute.Bool("request.valid", true))

	id, err := h.rentals.CreateReservation(ctx, req)
	if err != nil {
		span.RecordError(err)
		writeLogicError(c, err)
		return
	}

	logger.Info().Int("reservation_id", id).Msg("Reservation created")
	created(c, id, "/reservations")
}

// UpdateReservationStatus handles POST /api/reservations/:id/status.
func (h *Handler) UpdateReservationStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req domain.UpdateReservationStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.rentals.UpdateReservationStatus(c.Request.Context(), id, req.Status); err != nil {
		writeLogicError(c, err)
		return
	}

	updated(c, "/reservations")
}

// CreateInvoice handles POST /api/invoices.
func (h *Handler) CreateInvoice(c *gin.Context) {
	var req domain.CreateInvoiceRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.billing.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		writeLogicError(c, err)
		return
	}

	created(c, id, "/invoices")
}

// RecordPayment handles POST /api/cash.
func (h *Handler) RecordPayment(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var req domain.RecordPaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		span.RecordError(err)
		logger.Error().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(attribute.Bool("request.valid", true))

	id, err := h.billing.RecordPayment(ctx, req)
	if err != nil {
		span.RecordError(err)
		writeLogicError(c, err)
		return
	}

	logger.Info().Int("transaction_id", id).Msg("Payment recorded")
	created(c, id, "/cash")
}

// CreateMaintenance handles POST /api/maintenance.
func (h *Handler) CreateMaintenance(c *gin.Context) {
	var req domain.CreateMaintenanceRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.rentals.CreateMaintenance(c.Request.Context(), req)
	if err != nil {
		writeLogicError(c, err)
		return
	}

	created(c, id, "/maintenance")
}

// CompleteMaintenance handles POST /api/maintenance/:id/complete.
func (h *Handler) CompleteMaintenance(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.rentals.CompleteMaintenance(c.Request.Context(), id); err != nil {
		writeLogicError(c, err)
		return
	}

	updated(c, "/maintenance")
}
