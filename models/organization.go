package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the billing unit that owns a credits wallet and users.
type Organization struct {
	OrgID     uuid.UUID `json:"org_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// User belongs to exactly one organization. OrgID is null until onboarding completes.
type User struct {
	ID    uuid.UUID  `json:"id"`
	OrgID *uuid.UUID `json:"org_id,omitempty"`
	Email *string    `json:"email,omitempty"`
}

// CreditsWallet holds an organization's credit balance. The non-negative
// balance is enforced by the store's credit procedures.
type CreditsWallet struct {
	OrgID          uuid.UUID  `json:"org_id"`
	CurrentCredits int        `json:"current_credits"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
