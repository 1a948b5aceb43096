package models

import (
	"encoding/json"
	"time"
)

// PlatformViralityProfile carries per-platform tuning parameters.
// Only LastSynced is maintained by this service today.
type PlatformViralityProfile struct {
	Platform             string          `json:"platform"`
	IdealDurationSeconds *int            `json:"ideal_duration_seconds,omitempty"`
	HookWindowSeconds    *int            `json:"hook_window_seconds,omitempty"`
	TrendingFormats      json.RawMessage `json:"trending_formats,omitempty"` // Nullable JSONB
	LastSynced           *time.Time      `json:"last_synced,omitempty"`
}
