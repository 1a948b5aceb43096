package models

import "github.com/google/uuid"

// Brand is looked up read-only when naming recreation jobs.
type Brand struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Vertical *string   `json:"vertical,omitempty"`
}
