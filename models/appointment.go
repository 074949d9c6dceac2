package models

// Appointment stores the service name, price and duration as taken at
// booking time. It is created once and never mutated.
type Appointment struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customerName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Service      string  `json:"service"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Price        float64 `json:"price"`
	Duration     Minutes `json:"duration"`
}
