package models

import (
	"time"

	"github.com/google/uuid"
)

// Video job lifecycle statuses.
const (
	JobStatusQueued           = "queued"
	JobStatusApproved         = "approved"
	JobStatusScripting        = "scripting"
	JobStatusRendering        = "rendering"
	JobStatusComplianceReview = "compliance_review"
	JobStatusReady            = "ready"
	JobStatusPosted           = "posted"
	JobStatusFailed           = "failed"
)

// Compliance review states of a job's output.
const (
	ComplianceStatusPending  = "pending"
	ComplianceStatusPassed   = "passed"
	ComplianceStatusFlagged  = "flagged"
	ComplianceStatusRejected = "rejected"
)

// CampaignTypeTrendRecreation marks jobs created from a trend.
const CampaignTypeTrendRecreation = "trend_recreation"

// VideoJob represents the structure of a video job in the database.
type VideoJob struct {
	ID               uuid.UUID  `json:"id,omitempty"`
	OrgID            uuid.UUID  `json:"org_id"`
	BrandID          *uuid.UUID `json:"brand_id,omitempty"`        // Nullable foreign key
	SourceTrendID    *uuid.UUID `json:"source_trend_id,omitempty"` // Nullable foreign key
	Status           string     `json:"status"`
	ComplianceStatus string     `json:"compliance_status"`
	ScriptApproved   bool       `json:"script_approved"`
	TargetPlatforms  []string   `json:"target_platforms"`
	TargetVertical   *string    `json:"target_vertical,omitempty"`
	CampaignType     string     `json:"campaign_type"`
	Prompt           *string    `json:"prompt,omitempty"`
	CreditsCharged   int        `json:"credits_charged"`
	CreatedAt        time.Time  `json:"created_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at,omitempty"`
}
