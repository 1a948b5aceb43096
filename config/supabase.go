package config

import (
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

// NewSupabaseClient initializes the Supabase client used for auth lookups.
func NewSupabaseClient(cfg *Config) (*supa.Client, error) {
	if cfg.UsingAnonKey() {
		Log.Warn("Using anonymous key for Supabase. Set SUPABASE_SERVICE_ROLE_KEY for full access.")
	}

	client, err := supa.NewClient(cfg.SupabaseURL, cfg.ServiceKey(), nil)
	if err != nil {
		return nil, fmt.Errorf("error initializing Supabase client: %w", err)
	}

	Log.Info("Supabase client initialized successfully.")
	return client, nil
}
