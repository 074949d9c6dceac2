package models

// Stylist references catalog services by id. Deleting a service leaves
// dangling ids here; display paths skip ids they cannot resolve.
type Stylist struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	Specialization string  `json:"specialization,omitempty"`
	Services       []int64 `json:"services"`
}
