package models

import "time"

// ServiceArea represents a named polygonal boundary with entry/exit
// alerting rules. The boundary is a closed ring of at least three
// vertices; rings with fewer vertices are rejected at creation time.
type ServiceArea struct {
	ID           string     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Boundary     []Location `json:"boundary"`
	Active       bool       `json:"active" db:"active"`
	AlertOnEntry bool       `json:"alert_on_entry" db:"alert_on_entry"`
	AlertOnExit  bool       `json:"alert_on_exit" db:"alert_on_exit"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
