package models

// Client is a ledger record keyed by email or phone. Visit and spend totals
// are cumulative across appointments and checkouts; records are never
// deleted automatically.
type Client struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	LastVisitDate string  `json:"lastVisitDate,omitempty"`
	TotalVisits   int     `json:"totalVisits"`
	TotalSpent    float64 `json:"totalSpent"`
}
