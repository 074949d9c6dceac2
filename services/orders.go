package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/storage"
)

const (
	orderDateFormat = "1/2/2006"
	noteDateFormat  = "1/2/2006, 3:04:05 PM"
)

// OrderStore is the append-only collection of finalized transactions.
// Orders are created atomically at checkout and afterwards mutated in place
// for status changes and note appends.
type OrderStore struct {
	store storage.Store
	now   func() time.Time
}

func NewOrderStore(store storage.Store) *OrderStore {
	return &OrderStore{store: store, now: time.Now}
}

// List returns all orders, oldest first, with migration-on-read defaults
// applied: orders written before fulfillment tracking existed get a
// "pending" status and an empty notes sequence.
func (s *OrderStore) List() ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.store.Load(storage.CollectionOrders, &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		normalizeOrder(&orders[i])
	}
	return orders, nil
}

func (s *OrderStore) Get(id int64) (models.Order, bool, error) {
	orders, err := s.List()
	if err != nil {
		return models.Order{}, false, err
	}
	for _, order := range orders {
		if order.ID == id {
			return order, true, nil
		}
	}
	return models.Order{}, false, nil
}

// NextOrderNumber derives the next id from current state: 1 over an empty
// collection, otherwise 1 + the highest existing id. Deleting the
// highest-numbered order makes its number reusable; gaps below the maximum
// never are.
func (s *OrderStore) NextOrderNumber() (int64, error) {
	orders, err := s.List()
	if err != nil {
		return 0, err
	}
	return nextOrderID(orders), nil
}

// Create finalizes a checkout into an order. BNPL starts with payment
// pending, every other method is treated as settled at the counter.
func (s *OrderStore) Create(customerName string, items []models.CartLine, totals Totals, paymentMethod string) (models.Order, error) {
	if strings.TrimSpace(customerName) == "" {
		return models.Order{}, models.NewValidationError("customer name is required")
	}
	if paymentMethod == "" {
		return models.Order{}, models.NewValidationError("payment method is required")
	}
	if len(items) == 0 {
		return models.Order{}, models.NewValidationError("cart is empty")
	}

	orders, err := s.List()
	if err != nil {
		return models.Order{}, err
	}

	paymentStatus := models.PaymentPaid
	if paymentMethod == models.PaymentMethodBNPL {
		paymentStatus = models.PaymentPending
	}

	order := models.Order{
		ID:                nextOrderID(orders),
		Date:              s.now().Format(orderDateFormat),
		CustomerName:      customerName,
		Items:             items,
		Subtotal:          totals.Subtotal,
		Tax:               totals.Tax,
		Total:             totals.Total,
		PaymentMethod:     paymentMethod,
		PaymentStatus:     paymentStatus,
		FulfillmentStatus: models.FulfillmentPending,
		Notes:             []models.OrderNote{},
	}
	orders = append(orders, order)

	if err := s.store.Save(storage.CollectionOrders, orders); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// SetPaymentStatus replaces the payment status of the matching order,
// leaving everything else unchanged. Unknown ids are a no-op.
func (s *OrderStore) SetPaymentStatus(id int64, status models.PaymentStatus) (models.Order, bool, error) {
	if !status.Valid() {
		return models.Order{}, false, models.NewValidationError("invalid payment status %q", status)
	}
	return s.update(id, func(order *models.Order) {
		order.PaymentStatus = status
	})
}

// SetFulfillmentStatus replaces the fulfillment status of the matching
// order. Unknown ids are a no-op.
func (s *OrderStore) SetFulfillmentStatus(id int64, status models.FulfillmentStatus) (models.Order, bool, error) {
	if !status.Valid() {
		return models.Order{}, false, models.NewValidationError("invalid fulfillment status %q", status)
	}
	return s.update(id, func(order *models.Order) {
		order.FulfillmentStatus = status
	})
}

// AddNote appends a timestamped note to the order. Empty or whitespace-only
// text is rejected before anything is loaded or written.
func (s *OrderStore) AddNote(id int64, text string) (models.Order, bool, error) {
	if strings.TrimSpace(text) == "" {
		return models.Order{}, false, models.NewValidationError("note text is required")
	}
	return s.update(id, func(order *models.Order) {
		order.Notes = append(order.Notes, models.OrderNote{
			ID:   nextNoteID(order.Notes),
			Text: text,
			Date: s.now().Format(noteDateFormat),
		})
	})
}

// Delete removes the matching order. Unknown ids are a no-op.
func (s *OrderStore) Delete(id int64) (bool, error) {
	orders, err := s.List()
	if err != nil {
		return false, err
	}

	kept := orders[:0]
	for _, order := range orders {
		if order.ID != id {
			kept = append(kept, order)
		}
	}
	if len(kept) == len(orders) {
		return false, nil
	}
	if err := s.store.Save(storage.CollectionOrders, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Search returns orders whose customer name contains the term
// case-insensitively, or whose decimal id contains it, most recent first.
func (s *OrderStore) Search(term string) ([]models.Order, error) {
	orders, err := s.List()
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(term)
	matched := []models.Order{}
	for _, order := range orders {
		if term == "" ||
			strings.Contains(strings.ToLower(order.CustomerName), lower) ||
			strings.Contains(strconv.FormatInt(order.ID, 10), term) {
			matched = append(matched, order)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID > matched[j].ID
	})
	return matched, nil
}

func (s *OrderStore) update(id int64, mutate func(*models.Order)) (models.Order, bool, error) {
	orders, err := s.List()
	if err != nil {
		return models.Order{}, false, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		mutate(&orders[i])
		if err := s.store.Save(storage.CollectionOrders, orders); err != nil {
			return models.Order{}, false, err
		}
		return orders[i], true, nil
	}
	return models.Order{}, false, nil
}

func normalizeOrder(order *models.Order) {
	if order.FulfillmentStatus == "" {
		order.FulfillmentStatus = models.FulfillmentPending
	}
	if order.Notes == nil {
		order.Notes = []models.OrderNote{}
	}
}

func nextOrderID(orders []models.Order) int64 {
	var max int64
	for _, order := range orders {
		if order.ID > max {
			max = order.ID
		}
	}
	return max + 1
}

func nextNoteID(notes []models.OrderNote) int64 {
	var max int64
	for _, note := range notes {
		if note.ID > max {
			max = note.ID
		}
	}
	return max + 1
}
