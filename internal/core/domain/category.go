package domain

import "time"

// Category groups posts. Names are unique. Categories have no owner; any
// authenticated user may create one unless admin-only gating is enabled.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
