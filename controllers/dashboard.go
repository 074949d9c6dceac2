// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/services"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/utils"
)

type DashboardController struct {
	Ledger *services.Ledger
	Orders *services.OrderStore
	Book   *services.AppointmentBook
}

type DashboardOverview struct {
	TotalClients       int            `json:"totalClients"`
	TotalRevenue       float64        `json:"totalRevenue"`
	TotalOrders        int            `json:"totalOrders"`
	PendingPayments    int            `json:"pendingPayments"`
	TodaysAppointments int            `json:"todaysAppointments"`
	RecentOrders       []models.Order `json:"recentOrders"`
}

// GetDashboardOverview aggregates counters across the collections
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	clients, err := dc.Ledger.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	orders, err := dc.Orders.Search("")
	if err != nil {
		respondServiceError(c, err)
		return
	}

	appointments, err := dc.Book.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	overview := DashboardOverview{
		TotalClients: len(clients),
		TotalOrders:  len(orders),
		RecentOrders: []models.Order{},
	}

	for _, order := range orders {
		overview.TotalRevenue += order.Total
		if order.PaymentStatus == models.PaymentPending {
			overview.PendingPayments++
		}
	}
	overview.TotalRevenue = utils.Round2(overview.TotalRevenue)

	// Search("") returns orders id-descending, so the head is the most
	// recent slice.
	if len(orders) > 5 {
		overview.RecentOrders = orders[:5]
	} else {
		overview.RecentOrders = orders
	}

	today := utils.BeginningOfDay(time.Now()).Format("January 2, 2006")
	for _, appointment := range appointments {
		if appointment.Date == today {
			overview.TodaysAppointments++
		}
	}

	c.JSON(http.StatusOK, overview)
}
