package models

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentFailed  PaymentStatus = "failed"
)

type FulfillmentStatus string

const (
	FulfillmentPending   FulfillmentStatus = "pending"
	FulfillmentFulfilled FulfillmentStatus = "fulfilled"
	FulfillmentCancelled FulfillmentStatus = "cancelled"
)

const (
	PaymentMethodUPI  = "UPI"
	PaymentMethodCard = "Card"
	PaymentMethodCash = "Cash"
	PaymentMethodBNPL = "BNPL"
)

// CartLine is a denormalized service snapshot with a quantity. Orders keep
// the snapshot, not a reference, so later catalog edits never change an
// already-billed line.
type CartLine struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes Minutes `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Description     string  `json:"description,omitempty"`
	Quantity        int     `json:"quantity"`
}

type OrderNote struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

type Order struct {
	ID                int64             `json:"id"`
	Date              string            `json:"date"`
	CustomerName      string            `json:"customerName"`
	Items             []CartLine        `json:"items"`
	Subtotal          float64           `json:"subtotal"`
	Tax               float64           `json:"tax"`
	Total             float64           `json:"total"`
	PaymentMethod     string            `json:"paymentMethod"`
	PaymentStatus     PaymentStatus     `json:"paymentStatus"`
	FulfillmentStatus FulfillmentStatus `json:"fulfillmentStatus"`
	Notes             []OrderNote       `json:"notes"`
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentFailed:
		return true
	}
	return false
}

func (s FulfillmentStatus) Valid() bool {
	switch s {
	case FulfillmentPending, FulfillmentFulfilled, FulfillmentCancelled:
		return true
	}
	return false
}
