package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The page handlers render the server-side templates. Each loads what its
// page lists and hands it to the template; failures surface as a plain 500
// since there is no partial render worth showing.

// DashboardPage renders the landing page with the headline counters.
func (h *Handler) DashboardPage(c *gin.Context) {
	stats, err := h.billing.DashboardStats(c.Request.Context())
	if err != nil {
		writeLogicError(c, err)
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"Stats": stats})
}

// ClientsPage renders the client list and creation form.
func (h *Handler) ClientsPage(c *gin.Context) {
	clients, err := h.rentals.ListClients(c.Request.Context())
	if err != nil {
		writeLogicError(c, err)
		return
	}
	c.HTML(http.StatusOK, "clients.html", gin.H{"Clients": clients})
}

// BoatsPage renders the fleet list and creation form.
func (h *Handler) BoatsPage(c *gin.Context) {
	boats, err := h.rentals.ListBoats(c.Request.Context())
	if err != nil {
		writeLogicError(c, err)
		return
	}
	c.HTML(http.StatusOK, "boats.html", gin.H{"Boats": boats})
}

// ReservationsPage renders the reservation list and booking form.
func (h *Handler) ReservationsPage(c *gin.Context) {
	reservations, err := h.rentals.ListReservations(c.Request.Context())
	if err != nil {
		writeLogicError(c, err)
		return
	}
	c.HTML(http.StatusOK, "reservations.html", gin.H{"Reservations": reservations})
}

// InvoicesPage renders the invoice list and creation form.
func (h *Handler) InvoicesPage(c *gin.Context) {
	invoices, err := h.billing.ListInvoices(c.Request.Context())
	if err != nil {
		writeLogicError(c, err)
		return
	}
	c.HTML(http.StatusOK, "invoices.html", gin.H{"Invoices": invoices})
}

// CashPage renders the cash register: the transaction log and payment form.
func (h *Handler) CashPage(c *gin.Context) {
	transactions, err := h.billing.ListCashTransactions(c.Request.Context())
	if err != nil {
		writeLogicError(c, err)
		return
	}
	c.HTML(http.StatusOK, "cash.html", gin.H{"Transactions": transactions})
}

// MaintenancePage renders the maintenance log and report form.
func (h *Handler) MaintenancePage(c *gin.Context) {
	maintenances, err := h.rentals.ListMaintenance(c.Request.Context())
	if err != nil {
		writeLogicError(c, err)
		return
	}
	c.HTML(http.StatusOK, "maintenance.html", gin.H{"Maintenances": maintenances})
}

// ReportsPage renders both aggregate reports side by side.
func (h *Handler) ReportsPage(c *gin.Context) {
	ctx := c.Request.Context()

	income, err := h.billing.IncomeByMonth(ctx)
	if err != nil {
		writeLogicError(c, err)
		return
	}
	occupancy, err := h.billing.BoatOccupancy(ctx)
	if err != nil {
		writeLogicError(c, err)
		return
	}

	c.HTML(http.StatusOK, "reports.html", gin.H{
		"Income":    income,
		"Occupancy": occupancy,
	})
}
