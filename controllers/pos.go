// controllers/pos.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/services"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/utils"
)

// POSController drives one checkout session per cart: select services,
// adjust quantities, pick a payment method, then turn the cart into an
// order.
type POSController struct {
	Carts   *services.CartManager
	Catalog *services.Catalog
	Orders  *services.OrderStore
	Ledger  *services.Ledger
}

// AddItemInput defines the expected JSON structure for adding a cart line
type AddItemInput struct {
	ServiceID int64 `json:"serviceId" binding:"required"`
}

// ChangeQuantityInput defines the expected JSON structure for a quantity
// change
type ChangeQuantityInput struct {
	Change int `json:"change" binding:"required"`
}

// CheckoutInput defines the expected JSON structure for finalizing a cart
type CheckoutInput struct {
	CustomerName  string `json:"customerName" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

func (pc *POSController) cart(c *gin.Context) (*services.Cart, string, bool) {
	id := c.Param("id")
	cart, ok := pc.Carts.Get(id)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Cart not found")
		return nil, "", false
	}
	return cart, id, true
}

// CreateCart opens a new checkout session
func (pc *POSController) CreateCart(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"cartId": pc.Carts.Create()})
}

// GetCart returns the current cart lines
func (pc *POSController) GetCart(c *gin.Context) {
	cart, _, ok := pc.cart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cart.Items()})
}

// AddItem puts one unit of a catalog service into the cart
func (pc *POSController) AddItem(c *gin.Context) {
	cart, _, ok := pc.cart(c)
	if !ok {
		return
	}

	var input AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc, err := pc.Catalog.Get(input.ServiceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	cart.AddItem(svc)
	c.JSON(http.StatusOK, gin.H{"items": cart.Items()})
}

// RemoveItem drops a line from the cart
func (pc *POSController) RemoveItem(c *gin.Context) {
	cart, _, ok := pc.cart(c)
	if !ok {
		return
	}

	serviceID, err := strconv.ParseInt(c.Param("serviceId"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	cart.RemoveItem(serviceID)
	c.JSON(http.StatusOK, gin.H{"items": cart.Items()})
}

// ChangeQuantity nudges a line's quantity up or down
func (pc *POSController) ChangeQuantity(c *gin.Context) {
	cart, _, ok := pc.cart(c)
	if !ok {
		return
	}

	serviceID, err := strconv.ParseInt(c.Param("serviceId"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input ChangeQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	cart.ChangeQuantity(serviceID, input.Change)
	c.JSON(http.StatusOK, gin.H{"items": cart.Items()})
}

// GetTotals computes subtotal, tax and total for the given payment method
func (pc *POSController) GetTotals(c *gin.Context) {
	cart, _, ok := pc.cart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cart.ComputeTotals(c.Query("paymentMethod")))
}

// Checkout finalizes the cart into an order, records the visit in the
// client ledger when the customer has an identity, and discards the cart.
// Walk-ins without email or phone skip the ledger.
func (pc *POSController) Checkout(c *gin.Context) {
	cart, cartID, ok := pc.cart(c)
	if !ok {
		return
	}

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	totals := cart.ComputeTotals(input.PaymentMethod)
	order, err := pc.Orders.Create(input.CustomerName, cart.Items(), totals, input.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Separate write to a separate collection; the order stands even if the
	// ledger write fails.
	if input.Email != "" || input.Phone != "" {
		if _, err := pc.Ledger.UpsertFromTransaction(input.CustomerName, input.Email, input.Phone, order.Date, order.Total); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	pc.Carts.Discard(cartID)
	c.JSON(http.StatusCreated, order)
}
