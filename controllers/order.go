// controllers/order.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/services"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/utils"
)

type OrderController struct {
	Orders *services.OrderStore
}

// UpdatePaymentStatusInput defines the expected JSON structure for a payment
// status change
type UpdatePaymentStatusInput struct {
	Status string `json:"status" binding:"required,oneof=paid pending failed"`
}

// UpdateFulfillmentStatusInput defines the expected JSON structure for a
// fulfillment status change
type UpdateFulfillmentStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending fulfilled cancelled"`
}

// AddNoteInput defines the expected JSON structure for appending a note
type AddNoteInput struct {
	Text string `json:"text" binding:"required"`
}

func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return 0, false
	}
	return id, true
}

// GetOrders retrieves orders most recent first, optionally filtered by
// customer name or order number
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.Orders.Search(c.Query("search"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder retrieves a specific order by ID
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, found, err := oc.Orders.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdatePaymentStatus replaces an order's payment status
func (oc *OrderController) UpdatePaymentStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var input UpdatePaymentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, found, err := oc.Orders.SetPaymentStatus(id, models.PaymentStatus(input.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateFulfillmentStatus replaces an order's fulfillment status
func (oc *OrderController) UpdateFulfillmentStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var input UpdateFulfillmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, found, err := oc.Orders.SetFulfillmentStatus(id, models.FulfillmentStatus(input.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// AddNote appends a timestamped note to an order
func (oc *OrderController) AddNote(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var input AddNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, found, err := oc.Orders.AddNote(id, input.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	deleted, err := oc.Orders.Delete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
