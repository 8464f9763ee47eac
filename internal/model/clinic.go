package model

import "time"

// Clinic is the profile subset of a tenant surfaced by this API.
// Email and status are read-only through the settings update path.
type Clinic struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Town        string    `json:"town"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ContactName string    `json:"contact_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
