package entities

import "time"

// Work is a construction work (obra) registered for safety compliance.
// The evaluation core only needs to resolve an active work before
// creating an evaluation; full work management lives elsewhere.

type Work struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
