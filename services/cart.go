package services

import (
	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/utils"
)

// TaxRate is the GST applied to non-cash payments.
const TaxRate = 0.18

// Cart holds the lines of one checkout session. It lives in memory only and
// is discarded once an order is created from it.
type Cart struct {
	items []models.CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem increments the quantity of an existing line for the same service,
// or appends a new line with quantity 1. Line order is preserved.
func (c *Cart) AddItem(svc models.Service) {
	for i, item := range c.items {
		if item.ID == svc.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, models.CartLine{
		ID:              svc.ID,
		Name:            svc.Name,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Description:     svc.Description,
		Quantity:        1,
	})
}

// RemoveItem drops the matching line entirely.
func (c *Cart) RemoveItem(serviceID int64) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != serviceID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// ChangeQuantity applies a delta to a line's quantity. The update only takes
// effect when the result stays above zero; decrementing to zero or below
// leaves the line unchanged rather than clamping or removing it.
func (c *Cart) ChangeQuantity(serviceID int64, delta int) {
	for i, item := range c.items {
		if item.ID == serviceID {
			if q := item.Quantity + delta; q > 0 {
				c.items[i].Quantity = q
			}
			return
		}
	}
}

func (c *Cart) Items() []models.CartLine {
	items := make([]models.CartLine, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals is pure: it derives subtotal, tax and total from the current
// lines on every call. Cash payments are tax exempt; everything else pays
// GST on the subtotal.
func (c *Cart) ComputeTotals(paymentMethod string) Totals {
	var subtotal float64
	for _, item := range c.items {
		subtotal += item.Price * float64(item.Quantity)
	}

	var tax float64
	if paymentMethod != models.PaymentMethodCash {
		tax = utils.Round2(subtotal * TaxRate)
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
